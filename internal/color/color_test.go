package color

import (
	"errors"
	"testing"
)

func TestParseHex_Expansion(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Color
	}{
		{"1byte/broadcasts_all_channels", "7f", Color{0x7f, 0x7f, 0x7f, 0x7f}},
		{"1byte/zero", "00", Color{0, 0, 0, 0}},
		{"1byte/full", "ff", Color{0xff, 0xff, 0xff, 0xff}},
		{"2bytes/rgb_and_white", "40a0", Color{0x40, 0x40, 0x40, 0xa0}},
		{"2bytes/white_off", "8800", Color{0x88, 0x88, 0x88, 0x00}},
		{"3bytes/white_turned_off", "884422", Color{0x88, 0x44, 0x22, 0x00}},
		{"3bytes/pure_red", "ff0000", Color{0xff, 0, 0, 0}},
		{"4bytes/as_is", "88442211", Color{0x88, 0x44, 0x22, 0x11}},
		{"4bytes/pure_white", "000000ff", Color{0, 0, 0, 0xff}},
		{"uppercase_accepted", "FF0000", Color{0xff, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.token)
			if err != nil {
				t.Fatalf("ParseHex(%q) returned error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"non_hex_characters", "zz", ErrInvalidHex},
		{"non_hex_mixed", "ffgg", ErrInvalidHex},
		{"odd_length", "abc", ErrInvalidLength},
		{"single_digit", "f", ErrInvalidLength},
		{"empty", "", ErrInvalidLength},
		{"too_long", "8844221100", ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.token)
			if err == nil {
				t.Fatalf("ParseHex(%q) should fail", tt.token)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseHex(%q) error = %v, want %v", tt.token, err, tt.wantErr)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	c := Color{R: 0x88, G: 0x44, B: 0x22, W: 0x11}
	if got := c.Hex(); got != "88442211" {
		t.Errorf("Hex() = %q, want %q", got, "88442211")
	}
}
