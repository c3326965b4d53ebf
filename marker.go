package jpegcomment

import "fmt"

// Marker is the second byte of a 2-byte JPEG marker code (the first byte is
// always 0xFF).
type Marker uint8

const (
	TEM  Marker = 0x01
	SOF0 Marker = 0xC0 // SOFn = SOF0+n, n = 0-15 excluding 4, 8 and 12
	DHT  Marker = 0xC4
	JPG  Marker = 0xC8
	DAC  Marker = 0xCC
	RST0 Marker = 0xD0 // RSTn = RST0+n, n = 0-7
	SOI  Marker = 0xD8
	EOI  Marker = 0xD9
	SOS  Marker = 0xDA
	DQT  Marker = 0xDB
	DNL  Marker = 0xDC
	DRI  Marker = 0xDD
	DHP  Marker = 0xDE
	EXP  Marker = 0xDF
	APP0 Marker = 0xE0 // APPn = APP0+n, n = 0-15
	JPG0 Marker = 0xF0 // JPGn = JPG0+n, n = 0-13
	COM  Marker = 0xFE
)

// IsRestart reports whether m is one of the eight restart markers RST0-RST7.
func (m Marker) IsRestart() bool {
	return m >= RST0 && m <= RST0+7
}

// Name returns the conventional short name of a marker value.
func (m Marker) Name() string {
	switch m {
	case 0x00:
		return "NUL"
	case TEM:
		return "TEM"
	case DHT:
		return "DHT"
	case JPG:
		return "JPG"
	case DAC:
		return "DAC"
	case SOI:
		return "SOI"
	case EOI:
		return "EOI"
	case SOS:
		return "SOS"
	case DQT:
		return "DQT"
	case DNL:
		return "DNL"
	case DRI:
		return "DRI"
	case DHP:
		return "DHP"
	case EXP:
		return "EXP"
	case COM:
		return "COM"
	case 0xFF:
		return "FILL"
	}
	switch {
	case m >= SOF0 && m <= SOF0+0xF:
		return fmt.Sprintf("SOF%d", m-SOF0)
	case m.IsRestart():
		return fmt.Sprintf("RST%d", m-RST0)
	case m >= APP0 && m <= APP0+0xF:
		return fmt.Sprintf("APP%d", m-APP0)
	case m >= JPG0 && m <= JPG0+0xD:
		return fmt.Sprintf("JPG%d", m-JPG0)
	}
	return fmt.Sprintf("RES%.2X", uint8(m)) // reserved
}
