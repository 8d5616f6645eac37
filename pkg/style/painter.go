package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Painter applies a Style to text for a particular output channel.
type Painter interface {
	Paint(s Style, text string) string
}

// LipglossPainter emits ANSI escape sequences through a lipgloss renderer.
// A nil Renderer uses lipgloss's default one.
type LipglossPainter struct {
	Renderer *lipgloss.Renderer
}

func (p LipglossPainter) Paint(s Style, text string) string {
	return s.Render(p.Renderer, text)
}

// TmuxPainter emits tmux style markup, for status-format and #() output.
type TmuxPainter struct{}

func (TmuxPainter) Paint(s Style, text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "#", "##")

	var attrs []string
	if s.Foreground != nil {
		attrs = append(attrs, "fg="+s.Foreground.Tmux())
	}
	if s.Background != nil {
		attrs = append(attrs, "bg="+s.Background.Tmux())
	}
	if s.IsInverted() {
		attrs = append(attrs, "reverse")
	}
	if len(attrs) == 0 {
		return text
	}
	return "#[" + strings.Join(attrs, ",") + "]" + text + "#[default]"
}

// Paint is p.Paint with a nil Painter meaning LipglossPainter{}.
func Paint(p Painter, s Style, text string) string {
	if p == nil {
		p = LipglossPainter{}
	}
	return p.Paint(s, text)
}
