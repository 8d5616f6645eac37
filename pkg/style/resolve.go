package style

import "github.com/b/tmux-tabline/pkg/colors"

// SegmentKind names a visual slot of a rendered tab.
type SegmentKind int

const (
	StartSeparator SegmentKind = iota
	TabName
	ClientsTemplate
	SyncTemplate
	EndSeparator
	segmentKinds
)

// Placeholder marks where a segment's dynamic content is substituted.
const Placeholder = "{}"

// defaultParts is the per-segment template table. invert closes the
// highlighted block by reversing the global style.
var defaultParts = [segmentKinds]struct {
	name   string
	text   string
	invert bool
}{
	StartSeparator:  {name: "start_separator", text: ""},
	TabName:         {name: "tab_name", text: " {} "},
	ClientsTemplate: {name: "clients_template", text: " [{}]"},
	SyncTemplate:    {name: "sync_template", text: " (S)"},
	EndSeparator:    {name: "end_separator", text: "", invert: true},
}

func (k SegmentKind) String() string {
	if k < 0 || k >= segmentKinds {
		return "unknown"
	}
	return defaultParts[k].name
}

// SegmentKinds lists every segment in render order.
func SegmentKinds() []SegmentKind {
	kinds := make([]SegmentKind, 0, segmentKinds)
	for k := StartSeparator; k < segmentKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// SegmentConfig is the user supplied, partially specified theme.
type SegmentConfig struct {
	GlobalStyle     *AllStyles   `yaml:"global_style,omitempty"`
	StartSeparator  *SegmentPart `yaml:"start_separator,omitempty"`
	TabName         *SegmentPart `yaml:"tab_name,omitempty"`
	ClientsTemplate *SegmentPart `yaml:"clients_template,omitempty"`
	SyncTemplate    *SegmentPart `yaml:"sync_template,omitempty"`
	EndSeparator    *SegmentPart `yaml:"end_separator,omitempty"`
}

// Part returns the user override for a segment, or nil.
func (c SegmentConfig) Part(kind SegmentKind) *SegmentPart {
	switch kind {
	case StartSeparator:
		return c.StartSeparator
	case TabName:
		return c.TabName
	case ClientsTemplate:
		return c.ClientsTemplate
	case SyncTemplate:
		return c.SyncTemplate
	case EndSeparator:
		return c.EndSeparator
	}
	return nil
}

// ResolvedPart is a segment with text and both state styles fully set.
type ResolvedPart struct {
	Text     string
	Active   Style
	Inactive Style
}

// StyleFor picks the style of the given tab state.
func (p ResolvedPart) StyleFor(active bool) Style {
	if active {
		return p.Active
	}
	return p.Inactive
}

// Paint paints the part's own text for the given tab state.
func (p ResolvedPart) Paint(painter Painter, active bool) string {
	return Paint(painter, p.StyleFor(active), p.Text)
}

// Theme is the fully cascaded styling of every segment. It is built by
// Resolve and read-only afterwards.
type Theme struct {
	Global AllStyles
	parts  [segmentKinds]ResolvedPart
}

// Part returns the resolved segment.
func (t Theme) Part(kind SegmentKind) ResolvedPart {
	if kind < 0 || kind >= segmentKinds {
		return ResolvedPart{}
	}
	return t.parts[kind]
}

// BuiltinStyles derives the last-resort styles from the palette: active tabs
// sit on the accent color, inactive ones on the foreground color.
func BuiltinStyles(p colors.Palette) AllStyles {
	return AllStyles{
		Active:   NewStyle(p.Black, p.Green, false),
		Inactive: NewStyle(p.Black, p.Fg, false),
	}
}

// Resolve cascades the user config over the built-in defaults. From most to
// least specific: segment override, segment template, global style, palette
// default. It never fails; anything unset falls through.
func Resolve(cfg SegmentConfig, palette colors.Palette) Theme {
	global := BuiltinStyles(palette)
	if cfg.GlobalStyle != nil {
		global = cfg.GlobalStyle.MergeWith(global)
	}

	theme := Theme{Global: global}
	for _, kind := range SegmentKinds() {
		def := defaultParts[kind]
		template := SegmentPart{Text: def.text}
		if def.invert {
			inv := global.Invert()
			template.Active = &inv.Active
			template.Inactive = &inv.Inactive
		}

		part := template
		if user := cfg.Part(kind); user != nil {
			part = user.MergeWith(template)
		}
		part = part.MergeWithStyle(global)

		theme.parts[kind] = ResolvedPart{
			Text:     part.Text,
			Active:   *part.Active,
			Inactive: *part.Inactive,
		}
	}
	return theme
}
