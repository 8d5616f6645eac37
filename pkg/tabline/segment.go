package tabline

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/b/tmux-tabline/pkg/colors"
	"github.com/b/tmux-tabline/pkg/style"
)

// DefaultRenamePlaceholder replaces the active tab's name while it is being
// renamed.
const DefaultRenamePlaceholder = "Enter name..."

// clientBadge is the cell painted for each other client on a tab.
const clientBadge = " "

// SegmentRenderer renders single tabs with a resolved theme.
type SegmentRenderer struct {
	Theme             style.Theme
	Palette           colors.Palette
	Painter           style.Painter
	RenamePlaceholder string
}

// fragmentBuilder concatenates styled text while counting printable cells of
// the unstyled input, so escape sequences never reach the width.
type fragmentBuilder struct {
	p     style.Painter
	sb    strings.Builder
	width int
}

func (b *fragmentBuilder) add(s style.Style, text string) {
	if text == "" {
		return
	}
	b.sb.WriteString(style.Paint(b.p, s, text))
	b.width += runewidth.StringWidth(text)
}

// Render produces the fragment for one tab. renaming only has an effect on
// the active tab.
func (s SegmentRenderer) Render(tab Tab, renaming bool) LinePart {
	b := &fragmentBuilder{p: s.Painter}
	active := tab.Active

	start := s.Theme.Part(style.StartSeparator)
	b.add(start.StyleFor(active), start.Text)

	label := tab.Name
	if renaming && active {
		label = s.RenamePlaceholder
		if label == "" {
			label = DefaultRenamePlaceholder
		}
	}
	name := s.Theme.Part(style.TabName)
	b.add(name.StyleFor(active), fillTemplate(name.Text, label))

	if len(tab.OtherClients) > 0 {
		clients := s.Theme.Part(style.ClientsTemplate)
		if before, after, ok := strings.Cut(clients.Text, style.Placeholder); ok {
			cs := clients.StyleFor(active)
			b.add(cs, before)
			for _, id := range tab.OtherClients {
				bg, fg, ok := colors.ClientColors(int(id), s.Palette)
				if !ok {
					continue
				}
				b.add(style.NewStyle(fg, bg, false), clientBadge)
			}
			b.add(cs, after)
		}
	}

	if tab.Sync {
		sync := s.Theme.Part(style.SyncTemplate)
		b.add(sync.StyleFor(active), sync.Text)
	}

	end := s.Theme.Part(style.EndSeparator)
	b.add(end.StyleFor(active), end.Text)

	return LinePart{
		Text:     b.sb.String(),
		Width:    b.width,
		TabIndex: tab.Position,
	}
}

// RenderTabs renders a whole snapshot in order.
func (s SegmentRenderer) RenderTabs(tabs []Tab, renaming bool) []LinePart {
	parts := make([]LinePart, 0, len(tabs))
	for _, t := range tabs {
		parts = append(parts, s.Render(t, renaming))
	}
	return parts
}

// RenderTab is the functional form of SegmentRenderer.Render.
func RenderTab(tab Tab, renaming bool, theme style.Theme, palette colors.Palette, p style.Painter) LinePart {
	return SegmentRenderer{Theme: theme, Palette: palette, Painter: p}.Render(tab, renaming)
}

// fillTemplate substitutes the first placeholder; a template without one is
// used as a prefix.
func fillTemplate(template, value string) string {
	if strings.Contains(template, style.Placeholder) {
		return strings.Replace(template, style.Placeholder, value, 1)
	}
	return template + value
}
