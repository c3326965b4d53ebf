package jpegcomment

import (
	"errors"
	"fmt"
)

// Standard error types for decoding and serializing.
var (
	// ErrBufferTooShort means a marker, length field or payload read ran
	// past the end of the input buffer.
	ErrBufferTooShort = errors.New("buffer too short")
	// ErrPayloadTooLarge means a segment payload plus its length field
	// does not fit the 16-bit length range.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// Warning records a non-fatal anomaly seen while decoding, such as an
// FF 00 escape outside entropy data.
type Warning struct {
	Offset int // byte offset of the 0xFF prefix in the input buffer
	Note   string
}

func (w Warning) String() string {
	return fmt.Sprintf("offset 0x%x: %s", w.Offset, w.Note)
}

// Decoder states. The byte stream is consumed once, left to right; the
// states distinguish table/marker territory from entropy-coded data, where
// 0xFF bytes are escaped rather than starting a marker.
const (
	stInit      = iota // scanning for a 0xFF marker prefix
	stSeenFF           // classifying the byte after 0xFF
	stInitEcs          // scanning entropy-coded data for 0xFF
	stSeenFFEcs        // classifying the byte after 0xFF inside entropy data
)

// Decode parses a complete JPEG stream held in data into its ordered element
// sequence. Segment, comment and entropy payloads are sub-slices of data;
// data must stay valid and unmodified for the lifetime of the Document.
// Decoding stops at the first EOI marker; trailing bytes are ignored.
//
// The only decode error is ErrBufferTooShort: the stream ended before EOI,
// or a segment length field pointed past the end of the buffer. Non-fatal
// anomalies are collected in the returned Document's Warnings.
func Decode(data []byte) (*Document, error) {
	doc := &Document{}
	state := stInit
	ecsStart := 0

	for offset := 0; ; {
		if offset >= len(data) {
			return nil, fmt.Errorf("no EOI before end of input: %w", ErrBufferTooShort)
		}
		b := data[offset]
		offset++

		switch state {
		case stInit:
			if b == 0xFF {
				state = stSeenFF
			}

		case stSeenFF:
			switch {
			case b == 0x00:
				// A stray escape outside entropy data. Keep going.
				doc.Warnings = append(doc.Warnings,
					Warning{Offset: offset - 2, Note: "unexpected ff 00 outside entropy data"})
				state = stInit
			case Marker(b) == SOI:
				doc.Elements = append(doc.Elements, Element{Kind: StartOfImage})
				state = stInit
			case Marker(b) == EOI:
				doc.Elements = append(doc.Elements, Element{Kind: EndOfImage})
				return doc, nil
			default:
				marker := Marker(b)
				if offset+2 > len(data) {
					return nil, fmt.Errorf("%s length field at offset 0x%x: %w",
						marker.Name(), offset, ErrBufferTooShort)
				}
				length := int(data[offset])<<8 + int(data[offset+1]) - 2
				offset += 2
				if length < 0 || offset+length > len(data) {
					return nil, fmt.Errorf("%s payload of %d bytes at offset 0x%x: %w",
						marker.Name(), length, offset, ErrBufferTooShort)
				}
				payload := data[offset : offset+length]
				offset += length
				if marker == COM {
					doc.Elements = append(doc.Elements, Comment(payload))
				} else {
					doc.Elements = append(doc.Elements, Segment(marker, payload))
				}
				if marker == SOS {
					state = stInitEcs
					ecsStart = offset
				} else {
					state = stInit
				}
			}

		case stInitEcs:
			if b == 0xFF {
				state = stSeenFFEcs
			}

		case stSeenFFEcs:
			switch {
			case b == 0x00:
				// Byte stuffing: a literal 0xFF in the entropy stream.
				state = stInitEcs
			case b == 0xFF:
				// Fill byte; still waiting for the marker byte.
			case Marker(b) == EOI:
				doc.Elements = append(doc.Elements,
					Element{Kind: EntropyKind, Data: data[ecsStart : offset-2]},
					Element{Kind: EndOfImage})
				return doc, nil
			case Marker(b).IsRestart():
				doc.Elements = append(doc.Elements,
					Element{Kind: EntropyKind, Data: data[ecsStart : offset-2]},
					Element{Kind: RestartKind, Marker: Marker(b)})
				state = stInitEcs
				ecsStart = offset
			default:
				// Not a recognized terminator: the 0xFF and this
				// byte stay inside the current entropy run.
				state = stInitEcs
			}
		}
	}
}
