package colors

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// ThemeMode is the configured theme: auto, dark, light, or a theme name.
type ThemeMode string

const (
	ThemeModeAuto  ThemeMode = "auto"
	ThemeModeDark  ThemeMode = "dark"
	ThemeModeLight ThemeMode = "light"
)

// Detection is the outcome of background detection.
type Detection struct {
	Dark bool
	// Source names the hint that decided: "forced", "COLORFGBG", "osc11",
	// "ITERM_PROFILE" or "fallback".
	Source string
	// Color is the reported background as #rrggbb, when the terminal told us.
	Color string
}

func (d Detection) String() string {
	shade := "light"
	if d.Dark {
		shade = "dark"
	}
	if d.Color != "" {
		return fmt.Sprintf("%s (%s, %s)", shade, d.Source, d.Color)
	}
	return fmt.Sprintf("%s (%s)", shade, d.Source)
}

// hint inspects one source; ok is false when the hint is absent.
type hint func() (Detection, bool)

// BackgroundDetector decides once whether the terminal background is dark.
// The result is cached; the OSC query must run before bubbletea takes over
// stdin.
type BackgroundDetector struct {
	mode   ThemeMode
	hints  []hint
	cached *Detection
}

func NewBackgroundDetector(mode ThemeMode) *BackgroundDetector {
	return &BackgroundDetector{
		mode:  mode,
		hints: []hint{hintCOLORFGBG, hintOSC11, hintITermProfile},
	}
}

// Detect checks the hints in order (COLORFGBG first since it survives tmux)
// and falls back to dark.
func (d *BackgroundDetector) Detect() Detection {
	if d.cached != nil {
		return *d.cached
	}

	var det Detection
	switch d.mode {
	case ThemeModeDark:
		det = Detection{Dark: true, Source: "forced"}
	case ThemeModeLight:
		det = Detection{Dark: false, Source: "forced"}
	default:
		det = Detection{Dark: true, Source: "fallback"}
		for _, h := range d.hints {
			if found, ok := h(); ok {
				det = found
				break
			}
		}
	}

	d.cached = &det
	return det
}

// IsDarkBackground reports the cached decision.
func (d *BackgroundDetector) IsDarkBackground() bool {
	return d.Detect().Dark
}

// COLORFGBG is "fg;bg" (sometimes "fg;default;bg"); the first eight ANSI
// colors count as dark backgrounds, the bright ones as light.
func hintCOLORFGBG() (Detection, bool) {
	v := os.Getenv("COLORFGBG")
	if v == "" {
		return Detection{}, false
	}
	parts := strings.Split(v, ";")
	if len(parts) < 2 {
		return Detection{}, false
	}
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Detection{}, false
	}
	return Detection{Dark: bg < 8 || bg == 16, Source: "COLORFGBG"}, true
}

// hintOSC11 asks the terminal itself. tmux swallows the query, so inside
// a pane this usually reports nothing.
func hintOSC11() (Detection, bool) {
	out := termenv.NewOutput(os.Stdout)
	bg := out.BackgroundColor()
	if bg == nil {
		return Detection{}, false
	}
	if _, ok := bg.(termenv.NoColor); ok {
		return Detection{}, false
	}
	return Detection{
		Dark:   out.HasDarkBackground(),
		Source: "osc11",
		Color:  termenv.ConvertToRGB(bg).Hex(),
	}, true
}

func hintITermProfile() (Detection, bool) {
	profile := strings.ToLower(os.Getenv("ITERM_PROFILE"))
	switch {
	case strings.Contains(profile, "light"):
		return Detection{Dark: false, Source: "ITERM_PROFILE"}, true
	case strings.Contains(profile, "dark"):
		return Detection{Dark: true, Source: "ITERM_PROFILE"}, true
	}
	return Detection{}, false
}

// ThemeFor resolves a configured theme name. "auto" and "" pick the dark or
// light theme from the detected background; unknown names fall back to dark.
func ThemeFor(name string, d *BackgroundDetector) Theme {
	switch ThemeMode(name) {
	case "", ThemeModeAuto:
		if d == nil {
			d = NewBackgroundDetector(ThemeModeAuto)
		}
		if d.IsDarkBackground() {
			return Themes["dark"]
		}
		return Themes["light"]
	}
	return GetTheme(name)
}
