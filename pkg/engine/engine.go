// Package engine owns the state of one tab line: the resolved theme, the
// last tab snapshot and the last layout. It is driven by host events and is
// not safe for concurrent use; hosts call it from a single goroutine.
package engine

import (
	"io"
	"log"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/b/tmux-tabline/pkg/perf"
	"github.com/b/tmux-tabline/pkg/style"
	"github.com/b/tmux-tabline/pkg/tabline"
)

// State is the lifecycle stage of an Engine.
type State int

const (
	// Uninitialized has no theme yet.
	Uninitialized State = iota
	// Themed has a theme but no usable snapshot.
	Themed
	// Ready can render.
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Themed:
		return "themed"
	case Ready:
		return "ready"
	}
	return "unknown"
}

// Options is the host independent configuration of the line.
type Options struct {
	Segment           style.SegmentConfig
	SessionPrefix     string
	SessionSuffix     string
	LeftIndicator     string
	RightIndicator    string
	RenamePlaceholder string

	// Painter overrides the ANSI output, e.g. with style.TmuxPainter.
	Painter style.Painter
}

// Host receives the engine's requests to change the focused tab.
type Host interface {
	SwitchTab(position int)
}

// HostFunc adapts a function to Host.
type HostFunc func(position int)

func (f HostFunc) SwitchTab(position int) { f(position) }

// Engine is the tab line state machine.
type Engine struct {
	opts   Options
	host   Host
	logger *log.Logger

	mode    ModeUpdate
	hasMode bool

	// theme is nil until the first ModeUpdate
	theme   *style.Theme
	painter style.Painter

	tabs   []tabline.Tab
	active int

	layout tabline.Layout
}

// New returns an engine in the Uninitialized state. A nil logger discards
// diagnostics; a nil host ignores tab switches.
func New(opts Options, host Host, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if host == nil {
		host = HostFunc(func(int) {})
	}
	return &Engine{opts: opts, host: host, logger: logger}
}

// State reports the lifecycle stage.
func (e *Engine) State() State {
	switch {
	case e.theme == nil:
		return Uninitialized
	case e.active == 0:
		return Themed
	default:
		return Ready
	}
}

// Handle applies one event and reports whether the line must be redrawn.
func (e *Engine) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case ModeUpdate:
		return e.handleMode(ev)
	case TabUpdate:
		return e.handleTabs(ev)
	case Mouse:
		e.handleMouse(ev)
		return false
	default:
		e.logger.Printf("unrecognized event %T", ev)
		return false
	}
}

func (e *Engine) handleMode(ev ModeUpdate) bool {
	redraw := !e.hasMode || e.mode != ev
	e.mode = ev
	e.hasMode = true
	e.rebuildTheme()
	return redraw
}

func (e *Engine) handleTabs(ev TabUpdate) bool {
	active := tabline.ActiveTab(ev.Tabs)
	if active == 0 {
		e.logger.Printf("could not find active tab in snapshot of %d tabs", len(ev.Tabs))
		return false
	}
	redraw := active != e.active || !tabsEqual(e.tabs, ev.Tabs)
	e.active = active
	e.tabs = slices.Clone(ev.Tabs)
	return redraw
}

func (e *Engine) handleMouse(ev Mouse) {
	switch ev.Kind {
	case LeftClick:
		if pos, ok := tabline.TabForClick(e.layout, e.active, ev.Col); ok {
			e.host.SwitchTab(pos)
		}
	case ScrollUp, ScrollDown:
		dir := tabline.ScrollUp
		if ev.Kind == ScrollDown {
			dir = tabline.ScrollDown
		}
		if target := tabline.ScrollTarget(e.active, len(e.tabs), dir); target != e.active {
			e.host.SwitchTab(target)
		}
	}
}

// Configure swaps the options, e.g. after a config reload, and rebuilds the
// theme if one exists.
func (e *Engine) Configure(opts Options) {
	e.opts = opts
	if e.hasMode {
		e.rebuildTheme()
	}
}

func (e *Engine) rebuildTheme() {
	timer := perf.Start("resolve theme")
	theme := style.Resolve(e.opts.Segment, e.mode.Palette)
	timer.Stop()

	e.theme = &theme
	if e.opts.Painter != nil {
		e.painter = e.opts.Painter
		return
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(e.mode.Profile)
	e.painter = style.LipglossPainter{Renderer: r}
}

// Render lays the current snapshot out in cols cells, caches the layout for
// click mapping and returns the styled row. Before the engine is Ready it
// returns "" and leaves the cached layout untouched.
func (e *Engine) Render(cols int) string {
	if e.State() != Ready {
		return ""
	}
	timer := perf.Start("render")
	defer timer.Stop()

	segments := tabline.SegmentRenderer{
		Theme:             *e.theme,
		Palette:           e.mode.Palette,
		Painter:           e.painter,
		RenamePlaceholder: e.opts.RenamePlaceholder,
	}
	parts := segments.RenderTabs(e.tabs, e.mode.Renaming)

	p := e.mode.Palette
	e.layout = tabline.BuildLayout(tabline.LineOptions{
		SessionName:     e.mode.SessionName,
		HideSessionName: e.mode.HideSessionName,
		SessionPrefix:   e.opts.SessionPrefix,
		SessionSuffix:   e.opts.SessionSuffix,
		LeftIndicator:   e.opts.LeftIndicator,
		RightIndicator:  e.opts.RightIndicator,
		PrefixStyle:     style.NewStyle(p.Fg, p.Bg, false),
		IndicatorStyle:  style.NewStyle(p.Black, p.Orange, false),
		Painter:         e.painter,
	}, parts, e.active, cols)
	return e.layout.String()
}

// Layout returns the layout of the last successful Render.
func (e *Engine) Layout() tabline.Layout {
	return e.layout
}

// Active returns the active tab position of the current snapshot, or 0.
func (e *Engine) Active() int {
	return e.active
}

// Tabs returns the current snapshot.
func (e *Engine) Tabs() []tabline.Tab {
	return e.tabs
}

func tabsEqual(a, b []tabline.Tab) bool {
	return slices.EqualFunc(a, b, func(x, y tabline.Tab) bool {
		return x.Position == y.Position &&
			x.Name == y.Name &&
			x.Active == y.Active &&
			x.Sync == y.Sync &&
			slices.Equal(x.OtherClients, y.OtherClients)
	})
}
