package jpegcomment

import "testing"

func TestMarkerName(t *testing.T) {
	cases := []struct {
		m    Marker
		name string
	}{
		{SOI, "SOI"},
		{EOI, "EOI"},
		{SOS, "SOS"},
		{DQT, "DQT"},
		{DHT, "DHT"},
		{COM, "COM"},
		{SOF0, "SOF0"},
		{SOF0 + 2, "SOF2"},
		{RST0, "RST0"},
		{RST0 + 7, "RST7"},
		{APP0, "APP0"},
		{APP0 + 14, "APP14"},
		{JPG0 + 3, "JPG3"},
		{0xFF, "FILL"},
		{0x02, "RES02"},
	}
	for _, c := range cases {
		if got := c.m.Name(); got != c.name {
			t.Errorf("Marker(0x%.2x).Name() = %q, want %q", uint8(c.m), got, c.name)
		}
	}
}

func TestIsRestart(t *testing.T) {
	for m := Marker(0); ; m++ {
		want := m >= 0xD0 && m <= 0xD7
		if got := m.IsRestart(); got != want {
			t.Errorf("Marker(0x%.2x).IsRestart() = %v, want %v", uint8(m), got, want)
		}
		if m == 0xFF {
			break
		}
	}
}
