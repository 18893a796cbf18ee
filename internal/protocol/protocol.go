// Package protocol encodes group colors into the wire frame understood by
// the STM32 LED controller.
//
// The frame is a fixed 17 bytes: a single 0xFF start byte followed by the
// four groups' R,G,B,W channel values in group order.
package protocol

import "github.com/pixelbar/pixeld/internal/color"

// StartByte marks the beginning of every frame.
const StartByte byte = 0xff

// PacketSize is the fixed length of an encoded frame.
const PacketSize = 1 + color.GroupCount*4

// Encode serializes a GroupSet into its wire frame.
func Encode(gs color.GroupSet) []byte {
	buf := make([]byte, 0, PacketSize)
	buf = append(buf, StartByte)
	for _, c := range gs {
		buf = append(buf, c.R, c.G, c.B, c.W)
	}
	return buf
}
