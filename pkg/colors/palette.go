package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ColorKind distinguishes the three ways a palette color can be expressed.
type ColorKind uint8

const (
	KindDefault ColorKind = iota // terminal default / transparent
	KindEightBit
	KindRGB
)

// PaletteColor is an abstract terminal color: the terminal default, an 8-bit
// index, or an RGB triple. The zero value is the terminal default.
type PaletteColor struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// Default returns the "use terminal default" color.
func Default() PaletteColor {
	return PaletteColor{Kind: KindDefault}
}

// EightBit returns an xterm-256 indexed color.
func EightBit(index uint8) PaletteColor {
	return PaletteColor{Kind: KindEightBit, Index: index}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) PaletteColor {
	return PaletteColor{Kind: KindRGB, R: r, G: g, B: b}
}

// Hex parses "#rrggbb" (the leading # is optional). Invalid input is reported
// through ok rather than an error so callers can fall through to defaults.
func Hex(hex string) (PaletteColor, bool) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 7 {
		return PaletteColor{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return PaletteColor{}, false
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), true
}

// MustHex is Hex for compile-time constants; it panics on malformed input.
func MustHex(hex string) PaletteColor {
	c, ok := Hex(hex)
	if !ok {
		panic(fmt.Sprintf("colors: invalid hex color %q", hex))
	}
	return c
}

// ParseColor accepts the textual forms a user may write in a config value:
// "default"/"transparent", an 8-bit index ("208"), "#rrggbb", or "r,g,b".
func ParseColor(s string) (PaletteColor, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return PaletteColor{}, false
	case "default", "transparent":
		return Default(), true
	}
	if strings.HasPrefix(s, "#") {
		return Hex(s)
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return PaletteColor{}, false
		}
		var rgb [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return PaletteColor{}, false
			}
			rgb[i] = uint8(v)
		}
		return RGB(rgb[0], rgb[1], rgb[2]), true
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return PaletteColor{}, false
	}
	return EightBit(uint8(v)), true
}

// String renders the color in the same notation ParseColor accepts.
func (c PaletteColor) String() string {
	switch c.Kind {
	case KindEightBit:
		return strconv.Itoa(int(c.Index))
	case KindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	default:
		return "default"
	}
}

// IsDefault reports whether the color defers to the terminal.
func (c PaletteColor) IsDefault() bool {
	return c.Kind == KindDefault
}

// DecodeColor converts a YAML/JSON node to a color. Scalars go through
// ParseColor; a three element sequence is an RGB triple.
func DecodeColor(node *yaml.Node) (PaletteColor, bool) {
	if node == nil {
		return PaletteColor{}, false
	}
	switch node.Kind {
	case yaml.ScalarNode:
		return ParseColor(node.Value)
	case yaml.SequenceNode:
		if len(node.Content) != 3 {
			return PaletteColor{}, false
		}
		var rgb [3]uint8
		for i, n := range node.Content {
			v, err := strconv.ParseUint(strings.TrimSpace(n.Value), 10, 8)
			if err != nil {
				return PaletteColor{}, false
			}
			rgb[i] = uint8(v)
		}
		return RGB(rgb[0], rgb[1], rgb[2]), true
	case yaml.MappingNode:
		// {rgb: [r, g, b]} / {eight_bit: n} as written by serde-style configs
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := strings.ToLower(node.Content[i].Value)
			val := node.Content[i+1]
			switch key {
			case "rgb":
				return DecodeColor(val)
			case "eight_bit", "eightbit":
				v, err := strconv.ParseUint(val.Value, 10, 8)
				if err != nil {
					return PaletteColor{}, false
				}
				return EightBit(uint8(v)), true
			}
		}
	}
	return PaletteColor{}, false
}

// MarshalYAML writes the color back in ParseColor notation.
func (c PaletteColor) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// Palette is the set of named colors a theme is derived from.
type Palette struct {
	Fg      PaletteColor
	Bg      PaletteColor
	Black   PaletteColor
	Red     PaletteColor
	Green   PaletteColor
	Yellow  PaletteColor
	Blue    PaletteColor
	Magenta PaletteColor
	Cyan    PaletteColor
	White   PaletteColor
	Orange  PaletteColor
	Gray    PaletteColor
	Purple  PaletteColor
	Gold    PaletteColor
	Silver  PaletteColor
	Pink    PaletteColor
	Brown   PaletteColor
}
