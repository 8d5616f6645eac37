package tabline

import "testing"

func TestClickedPart(t *testing.T) {
	layout := BuildLayout(LineOptions{SessionName: "s"}, fixedTabs(3, 4), 1, 80)
	// " [s] " is 5 cells, then three tabs of 4

	tests := []struct {
		col     int
		wantTab int
		wantOK  bool
	}{
		{0, 0, true},
		{4, 0, true},
		{5, 1, true},
		{8, 1, true},
		{9, 2, true},
		{16, 3, true},
		{17, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		part, ok := ClickedPart(layout, tt.col)
		if ok != tt.wantOK || part.TabIndex != tt.wantTab {
			t.Errorf("ClickedPart(%d) = (%d, %v), want (%d, %v)", tt.col, part.TabIndex, ok, tt.wantTab, tt.wantOK)
		}
	}
}

func TestTabForClick(t *testing.T) {
	layout := BuildLayout(LineOptions{}, fixedTabs(10, 6), 5, 30)
	// " < " then tabs 3..6 then " > "

	tests := []struct {
		name   string
		col    int
		want   int
		wantOK bool
	}{
		{"left indicator", 1, 0, false},
		{"first visible tab", 3, 3, true},
		{"active tab", 15, 0, false},
		{"last visible tab", 26, 6, true},
		{"right indicator", 28, 0, false},
		{"past end", 40, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TabForClick(layout, 5, tt.col)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("TabForClick(%d) = (%d, %v), want (%d, %v)", tt.col, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClickRoundTrip(t *testing.T) {
	layout := BuildLayout(LineOptions{SessionName: "work"}, fixedTabs(6, 7), 4, 40)
	col := 0
	for _, part := range layout {
		for c := col; c < col+part.Width; c++ {
			got, ok := ClickedPart(layout, c)
			if !ok || got.TabIndex != part.TabIndex || got.Text != part.Text {
				t.Fatalf("column %d mapped to %+v, want %+v", c, got, part)
			}
		}
		col += part.Width
	}
}

func TestScrollTarget(t *testing.T) {
	tests := []struct {
		name   string
		active int
		count  int
		dir    ScrollDirection
		want   int
	}{
		{"up", 2, 5, ScrollUp, 3},
		{"up clamps", 5, 5, ScrollUp, 5},
		{"down", 2, 5, ScrollDown, 1},
		{"down clamps", 1, 5, ScrollDown, 1},
		{"no tabs", 3, 0, ScrollUp, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollTarget(tt.active, tt.count, tt.dir); got != tt.want {
				t.Fatalf("ScrollTarget(%d, %d) = %d, want %d", tt.active, tt.count, got, tt.want)
			}
		})
	}
}
