package jpegcomment

import (
	"bytes"
	"testing"
)

func TestMPFHeader(t *testing.T) {
	ok, next := MPFHeader([]byte("MPF\x00II*\x00"))
	if !ok || next != MPFHeaderSize {
		t.Errorf("got %v, %d, want true, %d", ok, next, MPFHeaderSize)
	}
	if ok, _ := MPFHeader([]byte("Exif\x00\x00")); ok {
		t.Error("Exif header taken for MPF")
	}
	if ok, _ := MPFHeader([]byte("MP")); ok {
		t.Error("short payload taken for MPF")
	}
}

func TestPutMPFHeader(t *testing.T) {
	buf := make([]byte, 8)
	next := PutMPFHeader(buf)
	if next != MPFHeaderSize {
		t.Errorf("got next %d, want %d", next, MPFHeaderSize)
	}
	if !bytes.Equal(buf[:4], []byte("MPF\x00")) {
		t.Errorf("got % x, want the MPF signature", buf[:4])
	}
}

func TestMPFSegment(t *testing.T) {
	tiffPart := []byte("II*\x00\x08\x00\x00\x00")
	doc := testDoc(
		Element{Kind: StartOfImage},
		Segment(APP0+1, []byte("Exif\x00\x00")),
		Segment(APP0+2, append([]byte("MPF\x00"), tiffPart...)),
		Element{Kind: EndOfImage},
	)
	seg, ok := doc.MPFSegment()
	if !ok {
		t.Fatal("MPF segment not found")
	}
	if !bytes.Equal(seg, tiffPart) {
		t.Errorf("got % x, want the TIFF portion % x", seg, tiffPart)
	}
}

func TestMPFSegmentAbsent(t *testing.T) {
	doc := testDoc(
		Element{Kind: StartOfImage},
		Segment(APP0+2, []byte("ICC_PROFILE\x00")),
		Element{Kind: EndOfImage},
	)
	if _, ok := doc.MPFSegment(); ok {
		t.Error("non-MPF APP2 segment reported as MPF")
	}
}
