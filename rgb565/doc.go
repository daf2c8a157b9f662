// Package rgb565 provides the 16-bit RGB565 pixel format for the ST7789 display controller.
//
// The ST7789 uses 16 bits per pixel split into three channels:
//
//	Bits:    15 14 13 12 11 | 10 9 8 7 6 5 | 4 3 2 1 0
//	Channel:  R  R  R  R  R |  G G G G G G | B B B B B
//
// On the SPI wire each pixel is transmitted high byte first:
//
//	Value:  0xF800 (pure red)
//	Bytes:  0xF8 0x00
//
// This package provides:
//
// - RGB565: A color type representing a packed 5-6-5 pixel
// - Model: A color model for converting standard Go colors to RGB565
// - Named colors matching common panel test values (Red, Green, Blue, ...)
//
// Example usage:
//
//	// Pack 8-bit channels
//	c := rgb565.New(255, 128, 0)
//
//	// Use a named color
//	c = rgb565.Cyan
//
//	// Wire encoding (big-endian 16-bit)
//	buf := c.Bytes()
//
//	// Convert a standard Go color
//	c = rgb565.Model.Convert(color.RGBA{R: 255, A: 255}).(rgb565.RGB565)
package rgb565
