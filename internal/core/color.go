package core

import "fmt"

// Color is a 24-bit RGB color. Backends translate it to whatever their
// output supports (truecolor escape codes, tcell RGB, raylib colors).
type Color struct {
	R, G, B uint8
}

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Palette holds the four colors used to draw a frame.
type Palette struct {
	Background Color
	Border     Color
	Food       Color
	Snake      Color
}

// DefaultPalette matches the classic look: black board, cyan cell borders,
// red food and a green snake.
func DefaultPalette() Palette {
	return Palette{
		Background: RGB(0, 0, 0),
		Border:     RGB(93, 216, 228),
		Food:       RGB(255, 0, 0),
		Snake:      RGB(0, 255, 0),
	}
}
