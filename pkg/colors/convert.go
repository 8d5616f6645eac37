package colors

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ansi16 holds the xterm defaults for the first sixteen palette entries.
var ansi16 = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// Color cube levels for indices 16-231
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// Lipgloss converts the color for use in a lipgloss style. The terminal
// default maps to NoColor so the attribute is simply not emitted.
func (c PaletteColor) Lipgloss() lipgloss.TerminalColor {
	switch c.Kind {
	case KindEightBit:
		return lipgloss.Color(strconv.Itoa(int(c.Index)))
	case KindRGB:
		return lipgloss.Color(c.String())
	default:
		return lipgloss.NoColor{}
	}
}

// Colorful approximates the color in RGB space. ok is false for the terminal
// default, whose real value is unknown.
func (c PaletteColor) Colorful() (colorful.Color, bool) {
	switch c.Kind {
	case KindRGB:
		return rgbColor(c.R, c.G, c.B), true
	case KindEightBit:
		r, g, b := eightBitToRGB(c.Index)
		return rgbColor(r, g, b), true
	default:
		return colorful.Color{}, false
	}
}

func rgbColor(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// eightBitToRGB expands an xterm-256 index to its nominal RGB value.
func eightBitToRGB(index uint8) (uint8, uint8, uint8) {
	switch {
	case index < 16:
		c := ansi16[index]
		return c[0], c[1], c[2]
	case index < 232:
		i := int(index) - 16
		return cubeLevels[i/36], cubeLevels[(i/6)%6], cubeLevels[i%6]
	default:
		v := uint8(8 + 10*(int(index)-232))
		return v, v, v
	}
}

// Tmux returns the color in tmux style syntax (#[fg=...]).
func (c PaletteColor) Tmux() string {
	switch c.Kind {
	case KindEightBit:
		return "colour" + strconv.Itoa(int(c.Index))
	case KindRGB:
		return c.String()
	default:
		return "default"
	}
}
