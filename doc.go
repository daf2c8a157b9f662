// Package st7789 controls an ST7789 TFT LCD display via SPI.
//
// The ST7789 is a TFT LCD controller with 240×320 pixel resolution using
// 16-bit RGB565 pixels.
//
// # Display Characteristics
//
// - 16-bit color, 5-6-5 RGB packing (65536 colors)
// - 240×320 addressable pixels
// - Windowed RAM writes with automatic address increment
// - Panel-dependent color inversion (configurable)
//
// # Hardware Connection
//
// Connect the ST7789 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or a GPIO, see Opts.CS)
//	RST         → Optional: GPIO for hardware reset
//
// Routing the clock and data pins to the SPI peripheral is handled by the
// platform SPI driver; the port name passed to spireg.Open selects the
// peripheral.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/st7789"
//		"periph.io/x/devices/v3/st7789/rgb565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get Data/Command GPIO pin
//		dcPin := gpioreg.ByName("GPIO25")
//
//		// Create device
//		dev, _ := st7789.NewSPI(spiBus, dcPin, nil)
//		defer dev.Halt()
//
//		// Fill the screen
//		dev.FillScreen(rgb565.Red)
//
//		// Draw a rectangle and a pixel
//		dev.FillRect(20, 40, 100, 60, rgb565.Cyan)
//		dev.DrawPixel(120, 160, rgb565.White)
//	}
//
// # Using Hardware Reset Pin (Optional)
//
// If your display has a reset (RST) pin connected to a GPIO, you can provide
// it in the Opts struct for clean hardware initialization:
//
//	rstPin := gpioreg.ByName("GPIO24")
//
//	dev, _ := st7789.NewSPI(spiBus, dcPin, &st7789.Opts{
//		RST: rstPin,
//	})
//
// The driver performs a hardware reset sequence (RST high, low for 100ms,
// high again, 100ms settle) during initialization. If RST is nil, the driver
// skips the hardware reset and relies on power-on reset.
//
// # Color Inversion
//
// Some ST7789 panels require color inversion, others don't. If white renders
// as black and red as cyan, set InvertColors:
//
//	dev, _ := st7789.NewSPI(spiBus, dcPin, &st7789.Opts{
//		InvertColors: true,
//	})
//
// Inversion can also be toggled at runtime with Invert.
//
// # Coordinates
//
// Drawing requests outside the screen bounds are silently clipped or ignored;
// out-of-range coordinates never return an error. A FillRect overflowing the
// right or bottom edge is shrunk to fit, and a DrawPixel outside the screen
// issues no bus traffic at all.
//
// # Performance
//
// FillRect streams one 2-byte transfer per pixel inside a single
// chip-select-held transaction, so cost is linear in pixel count. DrawPixel
// pays the full window-set overhead for a single pixel and is the slowest way
// to draw; prefer FillRect for anything larger than a point.
//
// # Concurrency
//
// All operations are synchronous and blocking. A Dev owns its SPI connection
// and control pins exclusively; sharing a peripheral between two handles, or
// a handle between goroutines, requires external synchronization by the
// caller. No timeouts are applied: a stalled bus transfer blocks forever,
// which is treated as a hardware fault outside the driver's responsibility.
//
// # Datasheet
//
// For detailed command descriptions and timing information, see:
// https://www.newhavendisplay.com/appnotes/datasheets/LCDs/ST7789V.pdf
package st7789
