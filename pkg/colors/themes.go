package colors

import "sort"

// Theme is a named palette the tab line can be themed from.
type Theme struct {
	Name        string
	Description string
	Dark        bool // Is this a dark theme?
	Palette     Palette
}

func hexPalette(fg, bg, black, red, green, yellow, blue, magenta, cyan, white, orange, gray, purple, gold, silver, pink, brown string) Palette {
	return Palette{
		Fg: MustHex(fg), Bg: MustHex(bg), Black: MustHex(black),
		Red: MustHex(red), Green: MustHex(green), Yellow: MustHex(yellow),
		Blue: MustHex(blue), Magenta: MustHex(magenta), Cyan: MustHex(cyan),
		White: MustHex(white), Orange: MustHex(orange), Gray: MustHex(gray),
		Purple: MustHex(purple), Gold: MustHex(gold), Silver: MustHex(silver),
		Pink: MustHex(pink), Brown: MustHex(brown),
	}
}

// xtermPalette uses indexed colors only, so it degrades cleanly on 256-color
// and 16-color terminals.
var xtermPalette = Palette{
	Fg:      EightBit(7),
	Bg:      EightBit(0),
	Black:   EightBit(0),
	Red:     EightBit(1),
	Green:   EightBit(2),
	Yellow:  EightBit(3),
	Blue:    EightBit(4),
	Magenta: EightBit(5),
	Cyan:    EightBit(6),
	White:   EightBit(7),
	Orange:  EightBit(208),
	Gray:    EightBit(244),
	Purple:  EightBit(93),
	Gold:    EightBit(220),
	Silver:  EightBit(250),
	Pink:    EightBit(213),
	Brown:   EightBit(130),
}

// Built-in themes
var Themes = map[string]Theme{
	"dark": {
		Name:        "Dark",
		Description: "Default dark theme (xterm indexed colors)",
		Dark:        true,
		Palette:     xtermPalette,
	},

	"light": {
		Name:        "Light",
		Description: "Default light theme (xterm indexed colors)",
		Dark:        false,
		Palette: func() Palette {
			p := xtermPalette
			p.Fg = EightBit(250)
			p.Bg = EightBit(15)
			p.Green = EightBit(28)
			return p
		}(),
	},

	"rose-pine": {
		Name:        "Rose Pine",
		Description: "Elegant dark theme with muted colors",
		Dark:        true,
		Palette:     hexPalette("#e0def4", "#191724", "#26233a", "#eb6f92", "#31748f", "#f6c177", "#9ccfd8", "#c4a7e7", "#ebbcba", "#e0def4", "#f6c177", "#6e6a86", "#c4a7e7", "#f6c177", "#908caa", "#ebbcba", "#a8875d"),
	},

	"rose-pine-dawn": {
		Name:        "Rose Pine Dawn",
		Description: "Soft light theme with warm colors",
		Dark:        false,
		Palette:     hexPalette("#575279", "#faf4ed", "#f2e9e1", "#b4637a", "#286983", "#ea9d34", "#56949f", "#907aa9", "#d7827e", "#fffaf3", "#ea9d34", "#9893a5", "#907aa9", "#ea9d34", "#797593", "#d7827e", "#8b6a4a"),
	},

	"catppuccin-mocha": {
		Name:        "Catppuccin Mocha",
		Description: "Soothing pastel dark theme",
		Dark:        true,
		Palette:     hexPalette("#cdd6f4", "#1e1e2e", "#11111b", "#f38ba8", "#a6e3a1", "#f9e2af", "#89b4fa", "#cba6f7", "#94e2d5", "#cdd6f4", "#fab387", "#6c7086", "#cba6f7", "#f9e2af", "#bac2de", "#f5c2e7", "#b08968"),
	},

	"dracula": {
		Name:        "Dracula",
		Description: "Dark theme with vivid accents",
		Dark:        true,
		Palette:     hexPalette("#f8f8f2", "#282a36", "#21222c", "#ff5555", "#50fa7b", "#f1fa8c", "#bd93f9", "#ff79c6", "#8be9fd", "#f8f8f2", "#ffb86c", "#6272a4", "#bd93f9", "#f1fa8c", "#bfbfbf", "#ff79c6", "#a57b5b"),
	},

	"nord": {
		Name:        "Nord",
		Description: "Arctic, north-bluish palette",
		Dark:        true,
		Palette:     hexPalette("#d8dee9", "#2e3440", "#3b4252", "#bf616a", "#a3be8c", "#ebcb8b", "#81a1c1", "#b48ead", "#88c0d0", "#eceff4", "#d08770", "#4c566a", "#b48ead", "#ebcb8b", "#e5e9f0", "#b48ead", "#a0785a"),
	},

	"gruvbox-dark": {
		Name:        "Gruvbox Dark",
		Description: "Retro groove warm dark theme",
		Dark:        true,
		Palette:     hexPalette("#ebdbb2", "#282828", "#1d2021", "#fb4934", "#b8bb26", "#fabd2f", "#83a598", "#d3869b", "#8ec07c", "#fbf1c7", "#fe8019", "#928374", "#d3869b", "#fabd2f", "#bdae93", "#d3869b", "#a0785a"),
	},

	"solarized-dark": {
		Name:        "Solarized Dark",
		Description: "Precision colors for machines and people",
		Dark:        true,
		Palette:     hexPalette("#93a1a1", "#002b36", "#073642", "#dc322f", "#859900", "#b58900", "#268bd2", "#d33682", "#2aa198", "#eee8d5", "#cb4b16", "#586e75", "#6c71c4", "#b58900", "#93a1a1", "#d33682", "#8b6a4a"),
	},

	"tokyo-night": {
		Name:        "Tokyo Night",
		Description: "Dark theme inspired by Tokyo city lights",
		Dark:        true,
		Palette:     hexPalette("#c0caf5", "#1a1b26", "#15161e", "#f7768e", "#9ece6a", "#e0af68", "#7aa2f7", "#bb9af7", "#7dcfff", "#c0caf5", "#ff9e64", "#565f89", "#9d7cd8", "#e0af68", "#a9b1d6", "#ff007c", "#a0785a"),
	},
}

// GetTheme returns a theme by name, or the default dark theme if not found
func GetTheme(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return Themes["dark"]
}

// ListThemes returns all available theme names, sorted
func ListThemes() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
