package main

// Make a copy of a JPEG file with all COM, APP and JPG segments removed.

import (
	"bufio"
	"fmt"
	"log"
	"os"

	jcom "github.com/hepek/jpegcomment"
)

func main() {
	log.SetPrefix("jpegcommentstrip: ")
	log.SetFlags(0)
	if len(os.Args) != 3 {
		fmt.Printf("Usage: %s infile outfile\n", os.Args[0])
		return
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	doc, err := jcom.Decode(data)
	if err != nil {
		log.Fatal(err)
	}
	doc.StripSegmentsFunc(func(m jcom.Marker) bool {
		return m == jcom.COM ||
			m >= jcom.APP0 && m <= jcom.APP0+0xF ||
			m >= jcom.JPG0 && m <= jcom.JPG0+0xD
	})
	out, err := os.Create(os.Args[2])
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	writer := bufio.NewWriter(out)
	if err := doc.Serialize(writer); err != nil {
		log.Fatal(err)
	}
	if err := writer.Flush(); err != nil {
		log.Fatal(err)
	}
}
