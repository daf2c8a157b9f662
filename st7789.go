// Package st7789 controls an ST7789 TFT LCD display via SPI.
//
// The ST7789 is a 240x320 TFT controller using 16-bit RGB565 pixels.
//
// See the examples for how to use this package.
package st7789

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"periph.io/x/devices/v3/st7789/rgb565"
)

// Display resolution in pixels.
const (
	Width  = 240
	Height = 320
)

// Command bytes defined by the ST7789 datasheet. Each command is sent with the
// DC pin low, followed by its parameters (if any) with the DC pin high.
const (
	SWRESET = 0x01 // Software reset
	SLPOUT  = 0x11 // Sleep out
	INVOFF  = 0x20 // Display inversion off
	INVON   = 0x21 // Display inversion on
	DISPOFF = 0x28 // Display off
	DISPON  = 0x29 // Display on
	CASET   = 0x2A // Column address set
	RASET   = 0x2B // Row address set
	RAMWR   = 0x2C // Memory write
	MADCTL  = 0x36 // Memory access control (rotation and mirroring)
	COLMOD  = 0x3A // Interface pixel format
)

// Opts is the configuration for the ST7789 display.
type Opts struct {
	// Frequency is the SPI bus speed. Defaults to 32MHz. The datasheet rates
	// the write cycle for about 62.5MHz; the ceiling is documented, not
	// enforced.
	Frequency physic.Frequency

	// InvertColors enables the panel's color inversion. Whether inversion is
	// needed depends on the panel, not the controller: if white renders as
	// black and red as cyan, flip this.
	InvertColors bool

	// CS is an optional software chip select pin, asserted low around every
	// transaction. Leave nil when the SPI port controls CS in hardware.
	CS gpio.PinOut

	// RST is an optional hardware reset pin. Leave nil to rely on power-on
	// reset.
	RST gpio.PinIO
}

// Dev is the device handle for the ST7789 display.
//
// A Dev owns its SPI connection and control pins exclusively. It performs no
// locking: sharing one peripheral between two handles, or one handle between
// goroutines, requires external synchronization by the caller.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin, low for commands
	cs  gpio.PinOut // Software chip select (optional)
	rst gpio.PinIO  // Reset pin (optional)

	// Display geometry
	rect image.Rectangle

	// State
	halted bool
}

// NewSPI creates a new ST7789 device connected via SPI.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers at
// opts.Frequency. The dc (Data/Command) GPIO pin must be provided and
// configured as an output. Routing of the clock and data-out pins to the
// peripheral is the SPI port's job.
//
// opts can be nil to use defaults (32MHz, no inversion, hardware CS).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("st7789: dc pin is required")
	}
	if opts == nil {
		opts = &Opts{}
	}

	f := opts.Frequency
	if f == 0 {
		f = 32 * physic.MegaHertz
	}

	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	d := &Dev{
		c:    c,
		dc:   dc,
		cs:   opts.CS,
		rst:  opts.RST,
		rect: image.Rect(0, 0, Width, Height),
	}

	if err := d.init(opts); err != nil {
		return nil, err
	}

	return d, nil
}

// init sends the initialization sequence to the display.
//
// The sequence and delays follow the ST7789 datasheet. The delays are
// load-bearing for hardware settling and must not be shortened.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("st7789: failed to pull RST high: %w", err)
		}
		time.Sleep(100 * time.Millisecond)

		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7789: failed to pull RST low: %w", err)
		}
		time.Sleep(100 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("st7789: failed to pull RST high: %w", err)
		}
		time.Sleep(100 * time.Millisecond)
	}

	// Software reset, 120ms minimum before the next command.
	if err := d.sendCommand(SWRESET); err != nil {
		return err
	}
	time.Sleep(150 * time.Millisecond)

	// Exit sleep mode, 120ms minimum.
	if err := d.sendCommand(SLPOUT); err != nil {
		return err
	}
	time.Sleep(120 * time.Millisecond)

	// 16-bit RGB565 pixel format.
	if err := d.sendCommand(COLMOD); err != nil {
		return err
	}
	if err := d.sendData([]byte{0x55}); err != nil {
		return err
	}

	// No rotation, no mirroring.
	if err := d.sendCommand(MADCTL); err != nil {
		return err
	}
	if err := d.sendData([]byte{0x00}); err != nil {
		return err
	}

	// Panel-dependent inversion setting.
	inv := byte(INVOFF)
	if opts.InvertColors {
		inv = INVON
	}
	if err := d.sendCommand(inv); err != nil {
		return err
	}

	// Turn display ON and let it stabilize.
	if err := d.sendCommand(DISPON); err != nil {
		return err
	}
	time.Sleep(100 * time.Millisecond)

	return nil
}

// tx runs one chip-select-framed transfer. With a software CS pin the pin is
// held low for the whole buffer, so multi-byte writes are a single
// transaction. Without one, the SPI port frames the transfer itself.
func (d *Dev) tx(p []byte) error {
	if d.cs == nil {
		return d.c.Tx(p, nil)
	}
	if err := d.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("st7789: failed to assert CS: %w", err)
	}
	if err := d.c.Tx(p, nil); err != nil {
		d.cs.Out(gpio.High)
		return err
	}
	return d.cs.Out(gpio.High)
}

// sendCommand sends a single command byte with the DC pin low.
func (d *Dev) sendCommand(cmd byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.tx([]byte{cmd})
}

// sendData sends a slice of data bytes with the DC pin high, in one
// transaction.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.tx(data)
}

// setWindow configures the controller's write window.
//
// Coordinates are inclusive: (0,0)-(Width-1,Height-1) covers the whole screen.
// Column and row bounds are sent as big-endian 16-bit pairs, then RAMWR leaves
// the controller ready to receive a raw pixel stream that auto-increments
// through the window.
func (d *Dev) setWindow(x0, y0, x1, y1 int) error {
	if err := d.sendCommand(CASET); err != nil {
		return err
	}
	if err := d.sendData([]byte{byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}); err != nil {
		return err
	}

	if err := d.sendCommand(RASET); err != nil {
		return err
	}
	if err := d.sendData([]byte{byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}); err != nil {
		return err
	}

	// Prepare for pixel data.
	return d.sendCommand(RAMWR)
}

// FillRect fills a rectangle with a color.
//
// The rectangle is clipped against the screen bounds: a rectangle whose origin
// lies outside the screen is ignored, and one that overflows the right or
// bottom edge is shrunk. Out-of-range coordinates never return an error.
func (d *Dev) FillRect(x, y, w, h int, c rgb565.RGB565) error {
	if d.halted {
		return errors.New("st7789: halted")
	}

	if x < 0 || y < 0 || x >= Width || y >= Height || w <= 0 || h <= 0 {
		return nil
	}
	if x+w > Width {
		w = Width - x
	}
	if y+h > Height {
		h = Height - y
	}

	if err := d.setWindow(x, y, x+w-1, y+h-1); err != nil {
		return err
	}

	// Stream the pixel pattern inside one chip-select-held transaction,
	// one 2-byte transfer per pixel.
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	if d.cs != nil {
		if err := d.cs.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7789: failed to assert CS: %w", err)
		}
	}

	px := c.Bytes()
	for i := 0; i < w*h; i++ {
		if err := d.c.Tx(px[:], nil); err != nil {
			if d.cs != nil {
				d.cs.Out(gpio.High)
			}
			return err
		}
	}

	if d.cs != nil {
		return d.cs.Out(gpio.High)
	}
	return nil
}

// FillScreen fills the entire screen with a color.
func (d *Dev) FillScreen(c rgb565.RGB565) error {
	return d.FillRect(0, 0, Width, Height, c)
}

// DrawPixel sets a single pixel. Pixels outside the screen are ignored.
//
// This is the most expensive way to draw: every pixel pays the full window-set
// overhead. For multiple adjacent pixels, use FillRect instead.
func (d *Dev) DrawPixel(x, y int, c rgb565.RGB565) error {
	if d.halted {
		return errors.New("st7789: halted")
	}

	if x < 0 || y < 0 || x >= Width || y >= Height {
		return nil
	}

	if err := d.setWindow(x, y, x, y); err != nil {
		return err
	}
	px := c.Bytes()
	return d.sendData(px[:])
}

// Invert switches the panel's color inversion at runtime.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("st7789: halted")
	}
	cmd := byte(INVOFF)
	if invert {
		cmd = INVON
	}
	return d.sendCommand(cmd)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Halt turns the display off.
// After calling Halt, the display will not respond to further drawing calls
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(DISPOFF)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7789.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
