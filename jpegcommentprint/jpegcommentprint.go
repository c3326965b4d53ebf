package main

// Print JPEG structure: one line per element, with marker names and segment
// lengths. If an APP2 segment carries a Multi-Picture Format index, the
// embedded image directory is printed as well.

import (
	"fmt"
	"log"
	"os"

	jcom "github.com/hepek/jpegcomment"
)

func printMPF(doc *jcom.Document) error {
	seg, ok := doc.MPFSegment()
	if !ok {
		return nil
	}
	tree, err := jcom.GetMPFTree(seg)
	if err != nil {
		return err
	}
	sizes, offsets := jcom.MPFImageSizes(tree)
	for i := range sizes {
		fmt.Printf("MPF image %d: %d bytes at offset %d (from TIFF header)\n",
			i+1, sizes[i], offsets[i])
	}
	return nil
}

func main() {
	log.SetPrefix("jpegcommentprint: ")
	log.SetFlags(0)
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s file\n", os.Args[0])
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
	for _, w := range doc.Warnings {
		log.Printf("warning: %s", w)
	}
	if err := doc.Dump(os.Stdout); err != nil {
		log.Fatal(err)
	}
	if err := printMPF(doc); err != nil {
		log.Fatal(err)
	}
}
