package tabline

import (
	"github.com/mattn/go-runewidth"

	"github.com/b/tmux-tabline/pkg/style"
)

const (
	DefaultSessionPrefix  = " ["
	DefaultSessionSuffix  = "] "
	DefaultLeftIndicator  = " < "
	DefaultRightIndicator = " > "
)

// LineOptions controls the decoration around the tabs.
type LineOptions struct {
	SessionName     string
	HideSessionName bool
	SessionPrefix   string
	SessionSuffix   string
	LeftIndicator   string
	RightIndicator  string
	PrefixStyle     style.Style
	IndicatorStyle  style.Style
	Painter         style.Painter
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func (o LineOptions) decoration(s style.Style, text string) LinePart {
	return LinePart{
		Text:  style.Paint(o.Painter, s, text),
		Width: runewidth.StringWidth(text),
	}
}

func (o LineOptions) prefix() LinePart {
	if o.HideSessionName || o.SessionName == "" {
		return LinePart{}
	}
	text := orDefault(o.SessionPrefix, DefaultSessionPrefix) + o.SessionName + orDefault(o.SessionSuffix, DefaultSessionSuffix)
	return o.decoration(o.PrefixStyle, text)
}

func (o LineOptions) indicators() (LinePart, LinePart) {
	return o.decoration(o.IndicatorStyle, orDefault(o.LeftIndicator, DefaultLeftIndicator)),
		o.decoration(o.IndicatorStyle, orDefault(o.RightIndicator, DefaultRightIndicator))
}

// BuildLayout arranges rendered tabs into a row of at most maxWidth cells.
//
// When everything fits the row is the session prefix followed by every tab.
// Otherwise a contiguous window is grown around the active tab, adding whole
// tabs to whichever side has taken less width so far (the left side on a
// tie), and an indicator marks each side that still hides tabs. A side's
// indicator is only paid for while that side hides tabs, so reaching the
// first or last tab can make a wider window cheaper than a narrow one.
//
// The active tab is never dropped. The prefix is only given up when no
// window around the active tab fits beside it, and the indicators only when
// no window fits at all; a lone active tab wider than maxWidth is emitted
// as is.
//
// tabs must be in position order; active is the active tab's position. If no
// fragment carries that position the first tab anchors the window.
func BuildLayout(opts LineOptions, tabs []LinePart, active int, maxWidth int) Layout {
	prefix := opts.prefix()
	if len(tabs) == 0 {
		if prefix.Width > 0 && prefix.Width <= maxWidth {
			return Layout{prefix}
		}
		return Layout{}
	}

	// sums[i] is the width of tabs[:i]
	sums := make([]int, len(tabs)+1)
	for i, t := range tabs {
		sums[i+1] = sums[i] + t.Width
	}
	last := len(tabs) - 1
	if prefix.Width+sums[len(tabs)] <= maxWidth {
		return assemble(prefix, LinePart{}, tabs, LinePart{})
	}

	anchor := 0
	for i, t := range tabs {
		if t.TabIndex == active {
			anchor = i
			break
		}
	}

	left, right := opts.indicators()

	// cost is the row width of the window tabs[lo:hi+1] with its indicators
	cost := func(lo, hi int) int {
		width := sums[hi+1] - sums[lo]
		if lo > 0 {
			width += left.Width
		}
		if hi < last {
			width += right.Width
		}
		return width
	}
	// reachable reports whether some window containing [lo, hi] fits the
	// budget. Widening never shrinks the tab width, so only the window itself
	// and its extensions to either end can be the cheapest.
	reachable := func(lo, hi, budget int) bool {
		return min(cost(lo, hi), cost(0, hi), cost(lo, last), cost(0, last)) <= budget
	}

	budget := maxWidth - prefix.Width
	if !reachable(anchor, anchor, budget) {
		prefix = LinePart{}
		budget = maxWidth
	}
	if !reachable(anchor, anchor, budget) {
		return Layout{tabs[anchor]}
	}

	// Every step keeps the window inside some window that fits, so the loop
	// ends on one that fits.
	lo, hi := anchor, anchor
	addedLeft, addedRight := 0, 0
	for {
		leftFits := lo > 0 && reachable(lo-1, hi, budget)
		rightFits := hi < last && reachable(lo, hi+1, budget)

		if leftFits && (addedLeft <= addedRight || !rightFits) {
			lo--
			addedLeft += tabs[lo].Width
		} else if rightFits {
			hi++
			addedRight += tabs[hi].Width
		} else {
			break
		}
	}

	if lo == 0 {
		left = LinePart{}
	}
	if hi == last {
		right = LinePart{}
	}
	return assemble(prefix, left, tabs[lo:hi+1], right)
}

func assemble(prefix, left LinePart, tabs []LinePart, right LinePart) Layout {
	out := make(Layout, 0, len(tabs)+3)
	if prefix.Width > 0 {
		out = append(out, prefix)
	}
	if left.Width > 0 {
		out = append(out, left)
	}
	out = append(out, tabs...)
	if right.Width > 0 {
		out = append(out, right)
	}
	return out
}
