package jpegcomment

import (
	"fmt"
	"io"
)

// Document is the ordered element sequence of a decoded JPEG stream.
// Element order is serialization order and mirrors the file layout.
// Parsed payloads borrow from the decode buffer; edit operations rearrange
// elements but never touch the underlying bytes.
type Document struct {
	Elements []Element
	Warnings []Warning
}

// Serialize writes the exact on-wire form of every element in order. For a
// document decoded from a conformant stream and not edited since, the output
// reproduces the input byte for byte.
func (d *Document) Serialize(w io.Writer) error {
	for _, e := range d.Elements {
		if err := e.put(w); err != nil {
			return err
		}
	}
	return nil
}

// Dump prints one line per element for structure inspection.
func (d *Document) Dump(w io.Writer) error {
	for _, e := range d.Elements {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}

// Comment returns the payload of the first COM element, if any.
func (d *Document) Comment() ([]byte, bool) {
	for _, e := range d.Elements {
		if e.Kind == CommentKind {
			return e.Data, true
		}
	}
	return nil, false
}

// Comments returns the payloads of all COM elements in document order.
func (d *Document) Comments() [][]byte {
	var out [][]byte
	for _, e := range d.Elements {
		if e.Kind == CommentKind {
			out = append(out, e.Data)
		}
	}
	return out
}

// DeleteComment removes the first COM element and returns its payload.
// At most one comment is removed per call; once no comment remains, further
// calls report false and change nothing.
func (d *Document) DeleteComment() ([]byte, bool) {
	for i, e := range d.Elements {
		if e.Kind == CommentKind {
			d.Elements = append(d.Elements[:i], d.Elements[i+1:]...)
			return e.Data, true
		}
	}
	return nil, false
}

// SetComment deletes the first existing COM element, then inserts a new one
// holding data. The new comment goes immediately after the first APP0 (JFIF)
// segment if the document has one, otherwise at the end of the sequence.
// It returns the old comment payload the way DeleteComment does.
func (d *Document) SetComment(data []byte) ([]byte, bool) {
	old, ok := d.DeleteComment()
	comment := Comment(data)
	for i, e := range d.Elements {
		if e.Kind == SegmentKind && e.Marker == APP0 {
			d.Elements = append(d.Elements[:i+1],
				append([]Element{comment}, d.Elements[i+1:]...)...)
			return old, ok
		}
	}
	d.Elements = append(d.Elements, comment)
	return old, ok
}

// StripSegments removes every generic segment whose marker falls in the
// inclusive range [lo, hi]. Comments, entropy data, restart markers and the
// SOI/EOI delimiters are never removed, whatever the range.
func (d *Document) StripSegments(lo, hi Marker) {
	d.StripSegmentsFunc(func(m Marker) bool { return m >= lo && m <= hi })
}

// StripSegmentsFunc removes every generic segment whose marker satisfies
// strip, preserving the relative order of everything else.
func (d *Document) StripSegmentsFunc(strip func(Marker) bool) {
	kept := d.Elements[:0]
	for _, e := range d.Elements {
		if e.Kind == SegmentKind && strip(e.Marker) {
			continue
		}
		kept = append(kept, e)
	}
	d.Elements = kept
}
