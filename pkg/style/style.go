// Package style holds the optional-field style records the tab line is themed
// with and the cascade that resolves them into a complete Theme.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/b/tmux-tabline/pkg/colors"
)

// Style is a partially specified text style. A nil field is "unset", which
// is distinct from being set to the terminal default.
type Style struct {
	Foreground *colors.PaletteColor `yaml:"foreground,omitempty"`
	Background *colors.PaletteColor `yaml:"background,omitempty"`
	Inverted   *bool                `yaml:"inverted,omitempty"`
}

// NewStyle builds a fully specified style.
func NewStyle(fg, bg colors.PaletteColor, inverted bool) Style {
	return Style{Foreground: &fg, Background: &bg, Inverted: &inverted}
}

// MergeWith fills the fields unset in s from other. s wins wherever it is
// set, so callers merge the more specific style into the less specific one.
func (s Style) MergeWith(other Style) Style {
	out := s
	if out.Foreground == nil {
		out.Foreground = other.Foreground
	}
	if out.Background == nil {
		out.Background = other.Background
	}
	if out.Inverted == nil {
		out.Inverted = other.Inverted
	}
	return out
}

// Invert returns a copy with the inverted flag flipped. An unset flag stays
// unset.
func (s Style) Invert() Style {
	if s.Inverted != nil {
		v := !*s.Inverted
		s.Inverted = &v
	}
	return s
}

// IsComplete reports whether every field is set.
func (s Style) IsComplete() bool {
	return s.Foreground != nil && s.Background != nil && s.Inverted != nil
}

// IsInverted reports whether reverse video is on. Unset counts as off.
func (s Style) IsInverted() bool {
	return s.Inverted != nil && *s.Inverted
}

// Equal compares field values rather than pointers.
func (s Style) Equal(other Style) bool {
	return colorEqual(s.Foreground, other.Foreground) &&
		colorEqual(s.Background, other.Background) &&
		boolEqual(s.Inverted, other.Inverted)
}

func colorEqual(a, b *colors.PaletteColor) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func boolEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Render paints text in this style. A nil renderer uses lipgloss' default,
// which follows the color profile of stdout.
func (s Style) Render(r *lipgloss.Renderer, text string) string {
	if text == "" {
		return ""
	}
	if s.Foreground == nil && s.Background == nil && !s.IsInverted() {
		return text
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	st := r.NewStyle()
	if s.Foreground != nil {
		st = st.Foreground(s.Foreground.Lipgloss())
	}
	if s.Background != nil {
		st = st.Background(s.Background.Lipgloss())
	}
	if s.IsInverted() {
		st = st.Reverse(true)
	}
	return st.Render(text)
}

// AllStyles is a pair of styles, one per tab state.
type AllStyles struct {
	Active   Style `yaml:"active"`
	Inactive Style `yaml:"inactive"`
}

// MergeWith merges each state independently, see Style.MergeWith.
func (a AllStyles) MergeWith(other AllStyles) AllStyles {
	return AllStyles{
		Active:   a.Active.MergeWith(other.Active),
		Inactive: a.Inactive.MergeWith(other.Inactive),
	}
}

// Invert flips both states.
func (a AllStyles) Invert() AllStyles {
	return AllStyles{Active: a.Active.Invert(), Inactive: a.Inactive.Invert()}
}

// For picks the style of the given state.
func (a AllStyles) For(active bool) Style {
	if active {
		return a.Active
	}
	return a.Inactive
}
