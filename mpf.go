package jpegcomment

import (
	"bytes"
	"errors"

	tiff "github.com/garyhouston/tiff66"
)

// Multi-Picture Format (MPF) support. An MPF-carrying JPEG holds an APP2
// segment whose payload starts with an "MPF\0" signature followed by a TIFF
// structure indexing the additional images embedded after the first EOI.
// Decoding the tree is opt-in for callers; the core decoder never does it.

var mpfHeader = []byte("MPF\000")

// MPFHeaderSize is the byte length of the MPF signature.
const MPFHeaderSize = 4

// MPFHeader reports whether an APP2 payload starts with the MPF signature,
// and returns the offset of the TIFF structure that follows it.
func MPFHeader(payload []byte) (bool, int) {
	if len(payload) >= MPFHeaderSize && bytes.Equal(payload[:MPFHeaderSize], mpfHeader) {
		return true, MPFHeaderSize
	}
	return false, 0
}

// PutMPFHeader writes the MPF signature at the start of buf and returns the
// offset of the next byte.
func PutMPFHeader(buf []byte) int {
	copy(buf, mpfHeader)
	return MPFHeaderSize
}

// MPFSegment returns the TIFF portion of the first APP2 segment carrying an
// MPF signature, if the document has one.
func (d *Document) MPFSegment() ([]byte, bool) {
	for _, e := range d.Elements {
		if e.Kind != SegmentKind || e.Marker != APP0+2 {
			continue
		}
		if ok, next := MPFHeader(e.Data); ok {
			return e.Data[next:], true
		}
	}
	return nil, false
}

// GetMPFTree decodes the TIFF structure of an MPF segment. buf must start
// with the first byte of the TIFF header, i.e. just past the MPF signature.
func GetMPFTree(buf []byte) (*tiff.IFDNode, error) {
	valid, order, ifdpos := tiff.GetHeader(buf)
	if !valid {
		return nil, errors.New("GetMPFTree: invalid TIFF header")
	}
	return tiff.GetIFDTree(buf, order, ifdpos, tiff.MPFIndexSpace)
}

// PutMPFTree packs MPF data into buf in TIFF format, starting with the TIFF
// header. It returns the position following the last byte used.
func PutMPFTree(buf []byte, mpf *tiff.IFDNode) (uint32, error) {
	tiff.PutHeader(buf, mpf.Order, tiff.HeaderSize)
	return mpf.PutIFDTree(buf, tiff.HeaderSize)
}

// Tags in the MPF Index IFD.
const (
	MPFVersion        = 0xB000
	MPFNumberOfImages = 0xB001
	MPFEntry          = 0xB002
	MPFImageUIDList   = 0xB003
	MPFTotalFrames    = 0xB004
)

// MPFIndexTagNames maps MPF Index IFD tags to their names.
var MPFIndexTagNames = map[tiff.Tag]string{
	MPFVersion:        "MPFVersion",
	MPFNumberOfImages: "MPFNumberOfImages",
	MPFEntry:          "MPFEntry",
	MPFImageUIDList:   "MPFImageUIDList",
	MPFTotalFrames:    "MPFTotalFrames",
}

// MPFImageSizes extracts the per-image size and offset columns from a
// decoded MPF Index tree. Offsets are relative to the start of the TIFF
// header, except the first image whose offset is recorded as zero.
func MPFImageSizes(tree *tiff.IFDNode) (sizes, offsets []uint32) {
	order := tree.Order
	count := uint32(0)
	for _, f := range tree.Fields {
		switch f.Tag {
		case MPFNumberOfImages:
			count = f.Long(0, order)
			sizes = make([]uint32, count)
			offsets = make([]uint32, count)
		case MPFEntry:
			if sizes == nil {
				continue
			}
			// Each entry is four LONGs: attributes, size, offset,
			// and two dependent image references.
			for i := uint32(0); i < count; i++ {
				sizes[i] = f.Long(i*4+1, order)
				offsets[i] = f.Long(i*4+2, order)
			}
		}
	}
	return sizes, offsets
}
