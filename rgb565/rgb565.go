// Package rgb565 provides the 16-bit RGB565 pixel format used by the ST7789 display.
//
// The ST7789 stores each pixel in two bytes: 5 bits of red, 6 bits of green and
// 5 bits of blue. On the wire the controller expects the high byte first,
// independent of host byte order. This package provides the RGB565 color type,
// a color model for converting standard Go colors, and the wire encoding.
package rgb565

import (
	"image/color"
)

// RGB565 represents a 16-bit color with 5 bits red, 6 bits green and 5 bits blue.
// Bit layout: bits 15-11 = red, bits 10-5 = green, bits 4-0 = blue.
type RGB565 uint16

// Named colors, matching the values expected by ST7789 panels.
const (
	Black   RGB565 = 0x0000 // R=0, G=0, B=0
	White   RGB565 = 0xFFFF // R=31, G=63, B=31
	Red     RGB565 = 0xF800 // R=31, G=0, B=0
	Green   RGB565 = 0x07E0 // R=0, G=63, B=0
	Blue    RGB565 = 0x001F // R=0, G=0, B=31
	Yellow  RGB565 = 0xFFE0 // R=31, G=63, B=0
	Magenta RGB565 = 0xF81F // R=31, G=0, B=31
	Cyan    RGB565 = 0x07FF // R=0, G=63, B=31
	Orange  RGB565 = 0xFD20 // R=31, G=41, B=0
)

// New packs 8-bit red, green and blue channels into an RGB565 color.
// The low bits of each channel are truncated (3 bits for red and blue,
// 2 bits for green).
func New(r, g, b uint8) RGB565 {
	return RGB565(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// R returns the 5-bit red channel (0-31).
func (c RGB565) R() uint8 {
	return uint8(c >> 11)
}

// G returns the 6-bit green channel (0-63).
func (c RGB565) G() uint8 {
	return uint8(c>>5) & 0x3F
}

// B returns the 5-bit blue channel (0-31).
func (c RGB565) B() uint8 {
	return uint8(c) & 0x1F
}

// RGBA converts the RGB565 color to standard 16-bit RGBA channels.
// Channels are expanded by bit replication so that full scale maps to 0xFFFF
// (e.g. 5-bit 31 becomes 8-bit 255, not 248).
func (c RGB565) RGBA() (r, g, b, a uint32) {
	// 5-bit and 6-bit channels expand to 8 bits by replicating the top bits,
	// then to 16 bits by doubling the byte.
	r8 := uint32(c.R())<<3 | uint32(c.R())>>2
	g8 := uint32(c.G())<<2 | uint32(c.G())>>4
	b8 := uint32(c.B())<<3 | uint32(c.B())>>2
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565 by channel truncation.
func toRGB565(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit channels; keep the top 5/6/5 bits.
	return RGB565(uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11))
}

// Model converts colors to RGB565.
var Model = color.ModelFunc(toRGB565)

// Bytes returns the 2-byte wire encoding of the color: high byte first,
// as the ST7789 expects, independent of host byte order.
func (c RGB565) Bytes() [2]byte {
	return [2]byte{byte(c >> 8), byte(c)}
}
