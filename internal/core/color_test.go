package core

import "testing"

func TestRGBPacking(t *testing.T) {
	if got := RGB(0, 128, 0); got != 0x008000ff {
		t.Errorf("RGB(0, 128, 0) = %#08x, expected 0x008000ff", uint32(got))
	}
	if got := RGB(128, 0, 0); got != 0x800000ff {
		t.Errorf("RGB(128, 0, 0) = %#08x, expected 0x800000ff", uint32(got))
	}

	r, g, b, a := RGB(1, 2, 3).RGBA()
	if r != 1 || g != 2 || b != 3 || a != 255 {
		t.Errorf("RGBA() = (%d, %d, %d, %d), expected (1, 2, 3, 255)", r, g, b, a)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"#008000", ColorField, false},
		{"800000", ColorInk, false},
		{"#ffffff80", Color(0xffffff80), false},
		{"#fff", 0, true},
		{"#zzzzzz", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseColor(%q) = %#x, expected %#x", tc.in, got, tc.expected)
		}
	}

	if ColorField.Hex() != "#008000" {
		t.Errorf("Hex() = %q, expected #008000", ColorField.Hex())
	}
}

func TestParseSprite(t *testing.T) {
	s, err := ParseSprite(
		"@.",
		".@",
		"@@",
	)
	if err != nil {
		t.Fatalf("ParseSprite() failed: %v", err)
	}
	if s.Width() != 2 || s.Height() != 3 {
		t.Errorf("size = %dx%d, expected 2x3", s.Width(), s.Height())
	}

	want := []uint8{1, 0, 0, 1, 1, 1}
	got := s.Mask()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Mask() = %v, expected %v", got, want)
		}
	}

	if _, err := ParseSprite("@@", "@"); err == nil {
		t.Error("ParseSprite() should reject ragged rows")
	}
	if _, err := ParseSprite(); err == nil {
		t.Error("ParseSprite() should reject empty input")
	}
}
