package jpegcomment

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Kind identifies the variant of an Element. The set of kinds is closed;
// code consuming elements switches exhaustively over it.
type Kind uint8

const (
	StartOfImage Kind = iota // SOI marker, no payload
	SegmentKind              // generic marker segment with length-prefixed payload
	CommentKind              // COM segment, payload is the comment bytes
	EntropyKind              // raw entropy-coded data, stuffing left intact
	RestartKind              // one of RST0-RST7, no payload
	EndOfImage               // EOI marker, no payload
)

// Element is one structural unit of a JPEG stream. Marker is meaningful for
// SegmentKind and RestartKind. Data holds the segment or comment payload
// (framing excluded) or the raw entropy bytes; for parsed documents it is a
// sub-slice of the decode buffer, so the buffer must outlive the Document.
type Element struct {
	Kind   Kind
	Marker Marker
	Data   []byte
}

// Segment constructs a generic marker segment element.
func Segment(marker Marker, data []byte) Element {
	return Element{Kind: SegmentKind, Marker: marker, Data: data}
}

// Comment constructs a COM segment element holding the given comment bytes.
func Comment(data []byte) Element {
	return Element{Kind: CommentKind, Marker: COM, Data: data}
}

// The segment length field counts itself, so a payload may not exceed
// 2^16 - 3 bytes.
const maxPayload = 1<<16 - 3

// put writes the exact on-wire form of the element.
func (e Element) put(w io.Writer) error {
	switch e.Kind {
	case StartOfImage:
		return putMarker(w, SOI)
	case EndOfImage:
		return putMarker(w, EOI)
	case RestartKind:
		return putMarker(w, e.Marker)
	case SegmentKind, CommentKind:
		marker := e.Marker
		if e.Kind == CommentKind {
			marker = COM
		}
		if len(e.Data) > maxPayload {
			return fmt.Errorf("%s segment: %d byte payload: %w",
				marker.Name(), len(e.Data), ErrPayloadTooLarge)
		}
		if err := putMarker(w, marker); err != nil {
			return err
		}
		n := len(e.Data) + 2
		if _, err := w.Write([]byte{byte(n >> 8), byte(n)}); err != nil {
			return err
		}
		_, err := w.Write(e.Data)
		return err
	case EntropyKind:
		_, err := w.Write(e.Data)
		return err
	}
	return fmt.Errorf("unknown element kind %d", e.Kind)
}

func putMarker(w io.Writer, m Marker) error {
	_, err := w.Write([]byte{0xFF, byte(m)})
	return err
}

// String renders the element on a single line for structure inspection.
// Comment payloads are shown as text with invalid UTF-8 replaced; the
// rendering is diagnostic only and not part of the wire format.
func (e Element) String() string {
	switch e.Kind {
	case StartOfImage:
		return "SOI"
	case EndOfImage:
		return "EOI"
	case RestartKind:
		return fmt.Sprintf("%s (0x%.2x)", e.Marker.Name(), uint8(e.Marker))
	case SegmentKind:
		return fmt.Sprintf("%s (0x%.2x), %d bytes", e.Marker.Name(), uint8(e.Marker), len(e.Data))
	case CommentKind:
		return fmt.Sprintf("COM, %d bytes: %q", len(e.Data), lossyString(e.Data))
	case EntropyKind:
		return fmt.Sprintf("ECS, %d bytes", len(e.Data))
	}
	return fmt.Sprintf("unknown element kind %d", e.Kind)
}

func lossyString(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "�")
}
