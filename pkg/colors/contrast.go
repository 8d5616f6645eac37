package colors

import (
	"math"
)

// GetLuminance calculates the relative luminance of a color per WCAG formula.
// Returns a value between 0 (black) and 1 (white); the terminal default is
// treated as black since dark terminals are the common case.
func GetLuminance(c PaletteColor) float64 {
	cf, ok := c.Colorful()
	if !ok {
		return 0
	}
	return 0.2126*gammaSRGB(cf.R) + 0.7152*gammaSRGB(cf.G) + 0.0722*gammaSRGB(cf.B)
}

// gammaSRGB applies sRGB gamma correction
func gammaSRGB(val float64) float64 {
	if val <= 0.03928 {
		return val / 12.92
	}
	return math.Pow((val+0.055)/1.055, 2.4)
}

// GetContrastRatio calculates the WCAG contrast ratio between two colors.
// Returns a value between 1 (no contrast) and 21 (maximum contrast)
func GetContrastRatio(fg, bg PaletteColor) float64 {
	l1 := GetLuminance(fg)
	l2 := GetLuminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// IsLightColor returns true if the color is closer to white than black
func IsLightColor(c PaletteColor) bool {
	return GetLuminance(c) > 0.5
}

// TextColorFor picks the palette's black or white, whichever reads better on
// bg. Uses WCAG AA large-text threshold (3:1) and prefers black, matching the
// dark cursor text used on client badges.
func TextColorFor(bg PaletteColor, p Palette) PaletteColor {
	if bg.IsDefault() {
		return p.Fg
	}
	if GetContrastRatio(p.Black, bg) >= 3.0 {
		return p.Black
	}
	if GetContrastRatio(p.White, bg) >= 3.0 {
		return p.White
	}
	if IsLightColor(bg) {
		return p.Black
	}
	return p.White
}
