package style

// SegmentPart is one visual slot of a tab: literal text plus an optional
// style per tab state.
type SegmentPart struct {
	Text     string `yaml:"text,omitempty"`
	Active   *Style `yaml:"active_style,omitempty"`
	Inactive *Style `yaml:"inactive_style,omitempty"`
}

// MergeWith prefers the text and style fields of p, taking from other what p
// leaves empty.
func (p SegmentPart) MergeWith(other SegmentPart) SegmentPart {
	text := p.Text
	if text == "" {
		text = other.Text
	}
	return SegmentPart{
		Text:     text,
		Active:   mergeOptional(p.Active, other.Active),
		Inactive: mergeOptional(p.Inactive, other.Inactive),
	}
}

// MergeWithStyle fills both states from a global style block. The result has
// both styles set.
func (p SegmentPart) MergeWithStyle(styles AllStyles) SegmentPart {
	active := styles.Active
	if p.Active != nil {
		active = p.Active.MergeWith(styles.Active)
	}
	inactive := styles.Inactive
	if p.Inactive != nil {
		inactive = p.Inactive.MergeWith(styles.Inactive)
	}
	return SegmentPart{Text: p.Text, Active: &active, Inactive: &inactive}
}

// StyleFor returns the style of the given state, or the empty style.
func (p SegmentPart) StyleFor(active bool) Style {
	s := p.Inactive
	if active {
		s = p.Active
	}
	if s == nil {
		return Style{}
	}
	return *s
}

func mergeOptional(a, b *Style) *Style {
	switch {
	case a != nil && b != nil:
		m := a.MergeWith(*b)
		return &m
	case a != nil:
		c := *a
		return &c
	case b != nil:
		c := *b
		return &c
	}
	return nil
}
