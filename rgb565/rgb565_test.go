package rgb565

import (
	"image/color"
	"testing"
)

func TestNamedColorValues(t *testing.T) {
	tests := []struct {
		name  string
		color RGB565
		want  uint16
	}{
		{"Black", Black, 0x0000},
		{"White", White, 0xFFFF},
		{"Red", Red, 0xF800},
		{"Green", Green, 0x07E0},
		{"Blue", Blue, 0x001F},
		{"Yellow", Yellow, 0xFFE0},
		{"Magenta", Magenta, 0xF81F},
		{"Cyan", Cyan, 0x07FF},
		{"Orange", Orange, 0xFD20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint16(tt.color) != tt.want {
				t.Errorf("%s = 0x%04X, want 0x%04X", tt.name, uint16(tt.color), tt.want)
			}
		})
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		name  string
		color RGB565
		want  [2]byte
	}{
		{"pure red", Red, [2]byte{0xF8, 0x00}},
		{"pure green", Green, [2]byte{0x07, 0xE0}},
		{"white", White, [2]byte{0xFF, 0xFF}},
		{"black", Black, [2]byte{0x00, 0x00}},
		{"arbitrary", RGB565(0x1234), [2]byte{0x12, 0x34}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Bytes(); got != tt.want {
				t.Errorf("Bytes() = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    RGB565
	}{
		{"red", 255, 0, 0, Red},
		{"green", 0, 255, 0, Green},
		{"blue", 0, 0, 255, Blue},
		{"white", 255, 255, 255, White},
		{"black", 0, 0, 0, Black},
		{"yellow", 255, 255, 0, Yellow},
		{"truncates low bits", 7, 3, 7, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("New(%d, %d, %d) = 0x%04X, want 0x%04X", tt.r, tt.g, tt.b, uint16(got), uint16(tt.want))
			}
		})
	}
}

func TestChannels(t *testing.T) {
	tests := []struct {
		name    string
		color   RGB565
		r, g, b uint8
	}{
		{"white", White, 31, 63, 31},
		{"red", Red, 31, 0, 0},
		{"green", Green, 0, 63, 0},
		{"blue", Blue, 0, 0, 31},
		{"orange", Orange, 31, 41, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.R(); got != tt.r {
				t.Errorf("R() = %d, want %d", got, tt.r)
			}
			if got := tt.color.G(); got != tt.g {
				t.Errorf("G() = %d, want %d", got, tt.g)
			}
			if got := tt.color.B(); got != tt.b {
				t.Errorf("B() = %d, want %d", got, tt.b)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	// Full-scale channels must expand to 0xFFFF, not 0xF800-style truncation.
	r, g, b, a := White.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("White.RGBA() = (%04X, %04X, %04X, %04X), want all FFFF", r, g, b, a)
	}

	r, g, b, a = Red.RGBA()
	if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("Red.RGBA() = (%04X, %04X, %04X, %04X), want (FFFF, 0, 0, FFFF)", r, g, b, a)
	}

	r, g, b, _ = Black.RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Black.RGBA() = (%04X, %04X, %04X), want zeros", r, g, b)
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGB565
	}{
		{"RGBA red", color.RGBA{R: 255, A: 255}, Red},
		{"RGBA green", color.RGBA{G: 255, A: 255}, Green},
		{"RGBA blue", color.RGBA{B: 255, A: 255}, Blue},
		{"RGBA white", color.RGBA{R: 255, G: 255, B: 255, A: 255}, White},
		{"already RGB565", Cyan, Cyan},
		{"gray mid", color.Gray{Y: 0x80}, New(0x80, 0x80, 0x80)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Model.Convert(tt.in).(RGB565)
			if got != tt.want {
				t.Errorf("Convert(%v) = 0x%04X, want 0x%04X", tt.in, uint16(got), uint16(tt.want))
			}
		})
	}
}

func TestModelRoundTrip(t *testing.T) {
	// Converting a color through its own 16-bit expansion must be lossless.
	for _, c := range []RGB565{Black, White, Red, Green, Blue, Yellow, Magenta, Cyan, Orange} {
		r, g, b, _ := c.RGBA()
		got := Model.Convert(color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xFFFF}).(RGB565)
		if got != c {
			t.Errorf("round trip of 0x%04X = 0x%04X", uint16(c), uint16(got))
		}
	}
}
