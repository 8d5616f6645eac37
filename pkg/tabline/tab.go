// Package tabline turns a snapshot of tabs into a single styled row that fits
// a column budget, and maps clicks on that row back to tabs.
package tabline

import "strings"

// ClientID identifies a connected client. Ids are small positive integers
// assigned by the host; they select the client's badge color.
type ClientID int

// Tab is one entry of a tab snapshot as delivered by the host.
type Tab struct {
	Position     int // 1-based
	Name         string
	Active       bool
	Sync         bool
	OtherClients []ClientID
}

// LinePart is one printable, already styled fragment of the tab line.
// TabIndex is the 1-based position of the originating tab, or 0 for
// decoration such as the session name or an overflow indicator.
type LinePart struct {
	Text     string
	Width    int
	TabIndex int
}

// HasTab reports whether the fragment belongs to a tab.
func (p LinePart) HasTab() bool {
	return p.TabIndex > 0
}

// Layout is the ordered fragments of one rendered tab line.
type Layout []LinePart

// Width is the total printable width.
func (l Layout) Width() int {
	w := 0
	for _, p := range l {
		w += p.Width
	}
	return w
}

// String concatenates the fragments into the output row.
func (l Layout) String() string {
	var sb strings.Builder
	for _, p := range l {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// TabIndices lists the tab positions present, in display order.
func (l Layout) TabIndices() []int {
	var out []int
	for _, p := range l {
		if p.HasTab() {
			out = append(out, p.TabIndex)
		}
	}
	return out
}

// ActiveTab returns the position of the active tab in a snapshot, or 0.
func ActiveTab(tabs []Tab) int {
	for _, t := range tabs {
		if t.Active {
			return t.Position
		}
	}
	return 0
}
