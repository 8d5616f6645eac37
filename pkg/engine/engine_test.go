package engine

import (
	"bytes"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/b/tmux-tabline/pkg/colors"
	"github.com/b/tmux-tabline/pkg/style"
	"github.com/b/tmux-tabline/pkg/tabline"
)

type recordingHost struct {
	switched []int
}

func (h *recordingHost) SwitchTab(position int) {
	h.switched = append(h.switched, position)
}

func testMode() ModeUpdate {
	return ModeUpdate{Palette: colors.GetTheme("dark").Palette, Profile: termenv.TrueColor}
}

func namedTabs(active int, names ...string) []tabline.Tab {
	tabs := make([]tabline.Tab, len(names))
	for i, name := range names {
		tabs[i] = tabline.Tab{Position: i + 1, Name: name, Active: i+1 == active}
	}
	return tabs
}

func readyEngine(t *testing.T, host Host, tabs []tabline.Tab) *Engine {
	t.Helper()
	e := New(Options{}, host, nil)
	e.Handle(testMode())
	e.Handle(TabUpdate{Tabs: tabs})
	if e.State() != Ready {
		t.Fatalf("state = %v, want ready", e.State())
	}
	return e
}

func TestEngineStateTransitions(t *testing.T) {
	tabs := namedTabs(1, "a", "b")

	t.Run("mode first", func(t *testing.T) {
		e := New(Options{}, nil, nil)
		if e.State() != Uninitialized {
			t.Fatalf("state = %v, want uninitialized", e.State())
		}
		if got := e.Render(80); got != "" {
			t.Fatalf("uninitialized render = %q, want empty", got)
		}
		if !e.Handle(testMode()) {
			t.Fatal("first mode update should redraw")
		}
		if e.State() != Themed {
			t.Fatalf("state = %v, want themed", e.State())
		}
		if !e.Handle(TabUpdate{Tabs: tabs}) {
			t.Fatal("first snapshot should redraw")
		}
		if e.State() != Ready {
			t.Fatalf("state = %v, want ready", e.State())
		}
	})

	t.Run("tabs first", func(t *testing.T) {
		e := New(Options{}, nil, nil)
		e.Handle(TabUpdate{Tabs: tabs})
		if e.State() != Uninitialized {
			t.Fatalf("state = %v, want uninitialized", e.State())
		}
		if got := e.Render(80); got != "" {
			t.Fatalf("render without theme = %q, want empty", got)
		}
		e.Handle(testMode())
		if e.State() != Ready {
			t.Fatalf("state = %v, want ready", e.State())
		}
	})
}

func TestEngineRedrawSignals(t *testing.T) {
	e := readyEngine(t, nil, namedTabs(1, "a", "b"))

	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"same mode", testMode(), false},
		{"rename mode", func() Event { m := testMode(); m.Renaming = true; return m }(), true},
		{"same snapshot", TabUpdate{Tabs: namedTabs(1, "a", "b")}, false},
		{"active moved", TabUpdate{Tabs: namedTabs(2, "a", "b")}, true},
		{"renamed tab", TabUpdate{Tabs: namedTabs(2, "a", "c")}, true},
		{"mouse", Mouse{Kind: LeftClick, Col: 200}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Handle(tt.ev); got != tt.want {
				t.Fatalf("Handle(%T) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestEngineKeepsStaleLayoutWithoutActiveTab(t *testing.T) {
	var logs bytes.Buffer
	e := New(Options{}, nil, log.New(&logs, "", 0))
	e.Handle(testMode())
	e.Handle(TabUpdate{Tabs: namedTabs(2, "a", "b", "c")})
	before := e.Render(80)
	layout := e.Layout()

	if e.Handle(TabUpdate{Tabs: namedTabs(0, "x", "y")}) {
		t.Fatal("snapshot without an active tab must not redraw")
	}
	if !strings.Contains(logs.String(), "could not find active tab") {
		t.Fatalf("expected diagnostic, got %q", logs.String())
	}
	if e.Active() != 2 || len(e.Tabs()) != 3 {
		t.Fatalf("snapshot replaced: active=%d tabs=%d", e.Active(), len(e.Tabs()))
	}
	if !reflect.DeepEqual(e.Layout(), layout) {
		t.Fatal("layout changed after rejected snapshot")
	}
	if after := e.Render(80); after != before {
		t.Fatalf("render changed after rejected snapshot:\n%q\n%q", before, after)
	}
}

func TestEngineRender(t *testing.T) {
	e := readyEngine(t, nil, namedTabs(2, "one", "two", "three"))
	out := e.Render(80)

	if got := ansi.Strip(out); got != " one  two  three " {
		t.Fatalf("plain output = %q", got)
	}
	if e.Layout().Width() != ansi.StringWidth(out) {
		t.Fatalf("layout width %d, printable %d", e.Layout().Width(), ansi.StringWidth(out))
	}
}

func TestEngineRenderSessionName(t *testing.T) {
	e := New(Options{SessionPrefix: "<", SessionSuffix: "> "}, nil, nil)
	mode := testMode()
	mode.SessionName = "work"
	e.Handle(mode)
	e.Handle(TabUpdate{Tabs: namedTabs(1, "a")})

	if got := ansi.Strip(e.Render(80)); got != "<work>  a " {
		t.Fatalf("plain output = %q", got)
	}

	mode.HideSessionName = true
	e.Handle(mode)
	if got := ansi.Strip(e.Render(80)); got != " a " {
		t.Fatalf("hidden session name still rendered: %q", got)
	}
}

func TestEngineRenderElides(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = "tab "
	}
	e := readyEngine(t, nil, namedTabs(5, names...))

	for _, cols := range []int{30, 24, 17, 12, 6} {
		out := e.Render(cols)
		if w := ansi.StringWidth(out); w > cols {
			t.Fatalf("Render(%d) is %d wide", cols, w)
		}
		if !slicesContain(e.Layout().TabIndices(), 5) {
			t.Fatalf("Render(%d) dropped the active tab", cols)
		}
	}

	e.Render(30)
	if got := e.Layout().TabIndices(); !reflect.DeepEqual(got, []int{3, 4, 5, 6}) {
		t.Fatalf("visible tabs = %v, want [3 4 5 6]", got)
	}
}

func slicesContain(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func TestEngineRenaming(t *testing.T) {
	e := New(Options{RenamePlaceholder: "name?"}, nil, nil)
	mode := testMode()
	mode.Renaming = true
	e.Handle(mode)
	e.Handle(TabUpdate{Tabs: namedTabs(1, "a", "b")})

	if got := ansi.Strip(e.Render(80)); got != " name?  b " {
		t.Fatalf("plain output = %q", got)
	}
}

func TestEngineConfigureRebuildsTheme(t *testing.T) {
	e := readyEngine(t, nil, namedTabs(1, "a", "b"))
	e.Configure(Options{Segment: style.DecodeSegmentConfig(`tab_name: "[{}]"`)})

	if got := ansi.Strip(e.Render(80)); got != "[a][b]" {
		t.Fatalf("plain output = %q", got)
	}
}

func TestEngineMouse(t *testing.T) {
	tests := []struct {
		name   string
		active int
		ev     Mouse
		want   []int
	}{
		{"click other tab", 1, Mouse{Kind: LeftClick, Col: 4}, []int{2}},
		{"click active tab", 1, Mouse{Kind: LeftClick, Col: 1}, nil},
		{"click past end", 1, Mouse{Kind: LeftClick, Col: 50}, nil},
		{"scroll up", 1, Mouse{Kind: ScrollUp}, []int{2}},
		{"scroll up at end", 3, Mouse{Kind: ScrollUp}, nil},
		{"scroll down", 3, Mouse{Kind: ScrollDown}, []int{2}},
		{"scroll down at start", 1, Mouse{Kind: ScrollDown}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &recordingHost{}
			e := readyEngine(t, host, namedTabs(tt.active, "a", "b", "c"))
			e.Render(80)

			if e.Handle(tt.ev) {
				t.Fatal("mouse events never redraw")
			}
			if !reflect.DeepEqual(host.switched, tt.want) {
				t.Fatalf("switched = %v, want %v", host.switched, tt.want)
			}
		})
	}
}

func TestEngineClickBeforeRender(t *testing.T) {
	host := &recordingHost{}
	e := readyEngine(t, host, namedTabs(1, "a", "b"))
	e.Handle(Mouse{Kind: LeftClick, Col: 4})
	if len(host.switched) != 0 {
		t.Fatalf("click without a layout switched to %v", host.switched)
	}
}

func TestEngineTmuxPainter(t *testing.T) {
	e := New(Options{Painter: style.TmuxPainter{}}, nil, nil)
	e.Handle(testMode())
	e.Handle(TabUpdate{Tabs: namedTabs(1, "a", "b")})

	out := e.Render(80)
	if !strings.Contains(out, "#[") || strings.Contains(out, "\x1b[") {
		t.Fatalf("expected tmux markup only, got %q", out)
	}
	if e.Layout().Width() != 6 {
		t.Fatalf("layout width = %d, want 6", e.Layout().Width())
	}
}
