/*
Package jpegcomment reads and writes JPEG streams at the marker-segment
level. A stream is decoded in one pass into an ordered sequence of elements
(SOI, marker segments, comments, entropy-coded data, restart markers, EOI)
that serializes back byte for byte. Segment payloads aren't decoded, but the
element sequence can be edited structurally: the comment can be read,
replaced or deleted, and metadata segments can be stripped by marker range.

Example: replace the comment of a JPEG file.

	package main

	import (
		"log"
		"os"

		jcom "github.com/hepek/jpegcomment"
	)

	func main() {
		if len(os.Args) != 3 {
			log.Fatalf("Usage: %s file comment", os.Args[0])
		}
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		doc, err := jcom.Decode(data)
		if err != nil {
			log.Fatal(err)
		}
		if old, ok := doc.SetComment([]byte(os.Args[2])); ok {
			log.Printf("replaced comment: %s", old)
		}
		out, err := os.Create(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
		if err := doc.Serialize(out); err != nil {
			log.Fatal(err)
		}
	}

Example: print the structure of a JPEG file.

	package main

	import (
		"log"
		"os"

		jcom "github.com/hepek/jpegcomment"
	)

	func main() {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		doc, err := jcom.Decode(data)
		if err != nil {
			log.Fatal(err)
		}
		if err := doc.Dump(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

Example: strip all APP, JPG and COM segments from a JPEG file.

	package main

	import (
		"log"
		"os"

		jcom "github.com/hepek/jpegcomment"
	)

	func main() {
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
		if err := doc.Serialize(out); err != nil {
			log.Fatal(err)
		}
	}
*/
package jpegcomment
