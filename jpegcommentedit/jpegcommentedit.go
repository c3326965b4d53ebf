package main

// Edit the comment segment of a JPEG file: print, delete or replace the
// comment, or strip all APP segments to anonymize the image. The rewritten
// stream goes to the output file, or to standard output by default.

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"

	jcom "github.com/hepek/jpegcomment"
)

var (
	in        = flag.String("in", "", "input JPEG file")
	out       = flag.String("out", "-", "output file, - for stdout")
	comment   = flag.String("comment", "", "set the JPEG comment")
	del       = flag.Bool("delete", false, "delete the JPEG comment")
	print     = flag.Bool("print", false, "print the JPEG comment and exit")
	anonymize = flag.Bool("anonymize", false, "remove all APP segments (image metadata)")
	dump      = flag.Bool("dump", false, "print the JPEG structure and exit")
)

// flagGiven reports whether the named flag appeared on the command line,
// so an explicitly empty -comment is distinguishable from no -comment.
func flagGiven(name string) bool {
	given := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			given = true
		}
	})
	return given
}

func openOutput(name string) (io.Writer, func() error, error) {
	if name == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	w := bufio.NewWriter(f)
	flush := func() error {
		if err := w.Flush(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return w, flush, nil
}

func main() {
	log.SetPrefix("jpegcommentedit: ")
	log.SetFlags(0)
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatal(err)
	}
	doc, err := jcom.Decode(data)
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range doc.Warnings {
		log.Printf("warning: %s", w)
	}

	if *print {
		for _, c := range doc.Comments() {
			os.Stdout.Write(c)
		}
		return
	}
	if *dump {
		if err := doc.Dump(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *del {
		if old, ok := doc.DeleteComment(); ok {
			log.Printf("deleted comment: %s", old)
		}
	}
	if *anonymize {
		doc.StripSegments(jcom.APP0, jcom.APP0+0xF)
	}
	if flagGiven("comment") {
		if old, ok := doc.SetComment([]byte(*comment)); ok {
			log.Printf("replaced comment: %s", old)
		}
	}

	w, flush, err := openOutput(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := doc.Serialize(w); err != nil {
		log.Fatal(err)
	}
	if err := flush(); err != nil {
		log.Fatal(err)
	}
}
