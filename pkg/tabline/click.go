package tabline

// ClickedPart returns the fragment covering column col (0-based).
func ClickedPart(layout Layout, col int) (LinePart, bool) {
	start := 0
	for _, part := range layout {
		if col >= start && col < start+part.Width {
			return part, true
		}
		start += part.Width
	}
	return LinePart{}, false
}

// TabForClick returns the tab to switch to for a click at col. Clicks on
// decoration, past the end of the row, or on the already active tab return
// false.
func TabForClick(layout Layout, active int, col int) (int, bool) {
	part, ok := ClickedPart(layout, col)
	if !ok || !part.HasTab() {
		return 0, false
	}
	if part.TabIndex == active {
		return 0, false
	}
	return part.TabIndex, true
}

// ScrollDirection is the wheel direction of a pointer event.
type ScrollDirection int

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
)

// ScrollTarget moves focus one tab by position: up goes to the next tab,
// down to the previous one, clamped to [1, count] without wrapping.
func ScrollTarget(active, count int, dir ScrollDirection) int {
	if count < 1 {
		return active
	}
	target := active
	switch dir {
	case ScrollUp:
		target = active + 1
	case ScrollDown:
		target = active - 1
	}
	if target > count {
		target = count
	}
	if target < 1 {
		target = 1
	}
	return target
}
