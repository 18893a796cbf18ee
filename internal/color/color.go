// Package color parses hexadecimal color specifications into RGBW channel
// values for the pixelbar LED groups.
package color

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	// ErrInvalidHex indicates a token with characters outside [0-9a-fA-F].
	ErrInvalidHex = errors.New("invalid hexadecimal color value")
	// ErrInvalidLength indicates a token that does not decode to 1, 2, 3 or 4 bytes.
	ErrInvalidLength = errors.New("color value must be 1, 2, 3 or 4 hex bytes")
)

// Color holds the four channel intensities of a single LED group.
type Color struct {
	R, G, B, W uint8
}

// ParseHex converts one hex token into a Color. The token length selects the
// expansion rule:
//
//	1 byte  "88"       -> R=G=B=W=0x88
//	2 bytes "8844"     -> R=G=B=0x88, W=0x44
//	3 bytes "884422"   -> R,G,B as given, W off
//	4 bytes "88442211" -> R,G,B,W as given
func ParseHex(token string) (Color, error) {
	raw, err := hex.DecodeString(token)
	if err != nil {
		if errors.Is(err, hex.ErrLength) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidLength, token)
		}
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, token)
	}

	switch len(raw) {
	case 1:
		return Color{R: raw[0], G: raw[0], B: raw[0], W: raw[0]}, nil
	case 2:
		return Color{R: raw[0], G: raw[0], B: raw[0], W: raw[1]}, nil
	case 3:
		return Color{R: raw[0], G: raw[1], B: raw[2]}, nil
	case 4:
		return Color{R: raw[0], G: raw[1], B: raw[2], W: raw[3]}, nil
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidLength, token)
	}
}

// Hex returns the 8-digit lowercase hex form of the color.
func (c Color) Hex() string {
	return hex.EncodeToString([]byte{c.R, c.G, c.B, c.W})
}

func (c Color) String() string {
	return c.Hex()
}
