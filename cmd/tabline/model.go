package main

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/b/tmux-tabline/pkg/colors"
	"github.com/b/tmux-tabline/pkg/config"
	"github.com/b/tmux-tabline/pkg/engine"
	"github.com/b/tmux-tabline/pkg/tabline"
	"github.com/b/tmux-tabline/pkg/tmux"
)

// backend is the slice of tmux the pane talks to.
type backend interface {
	Snapshot() ([]tabline.Tab, []int, error)
	SessionName() (string, error)
	SelectWindow(index int) error
	RenameWindow(index int, name string) error
}

type tmuxBackend struct {
	self    string
	clients *tmux.ClientRegistry
}

func (b tmuxBackend) Snapshot() ([]tabline.Tab, []int, error) {
	return tmux.ListTabs(b.self, b.clients)
}

func (b tmuxBackend) SessionName() (string, error) { return tmux.SessionName() }

func (b tmuxBackend) SelectWindow(index int) error { return tmux.SelectWindow(index) }

func (b tmuxBackend) RenameWindow(index int, name string) error {
	return tmux.RenameWindow(index, name)
}

// switcher maps tab positions back to tmux window indices for the engine.
type switcher struct {
	backend backend
	indices []int
}

func (s *switcher) windowIndex(position int) (int, bool) {
	if position < 1 || position > len(s.indices) {
		return 0, false
	}
	return s.indices[position-1], true
}

func (s *switcher) SwitchTab(position int) {
	index, ok := s.windowIndex(position)
	if !ok {
		debugLog.Printf("switch to unknown tab %d", position)
		return
	}
	if err := s.backend.SelectWindow(index); err != nil {
		debugLog.Printf("select window %d: %v", index, err)
	}
}

type model struct {
	engine   *engine.Engine
	switcher *switcher
	backend  backend
	config   *config.Config
	detector *colors.BackgroundDetector
	profile  termenv.Profile
	keys     keyMap
	interval time.Duration

	session  string
	width    int
	renaming bool
	input    textinput.Model
}

type refreshMsg struct{}

type tickMsg time.Time

type configMsg struct {
	cfg *config.Config
	err error
}

func newModel(cfg *config.Config, b backend, detector *colors.BackgroundDetector, profile termenv.Profile, interval time.Duration) model {
	sw := &switcher{backend: b}

	ti := textinput.New()
	ti.Prompt = " rename: "
	ti.CharLimit = 64
	ti.Width = 20

	m := model{
		engine:   engine.New(cfg.EngineOptions(), sw, debugLog),
		switcher: sw,
		backend:  b,
		config:   cfg,
		detector: detector,
		profile:  profile,
		keys:     newKeyMap(cfg.Bindings),
		interval: interval,
		width:    80, // Will be updated by WindowSizeMsg
		input:    ti,
	}
	m.engine.Handle(m.mode())
	return m
}

func (m model) mode() engine.ModeUpdate {
	return engine.ModeUpdate{
		Palette:         colors.ThemeFor(m.config.Theme, m.detector).Palette,
		Renaming:        m.renaming,
		SessionName:     m.session,
		HideSessionName: m.config.HideSessionName,
		Profile:         m.profile,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(triggerRefresh(), m.tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case refreshMsg:
		m.refresh()

	case tickMsg:
		m.refresh()
		return m, m.tick()

	case configMsg:
		if msg.err != nil {
			debugLog.Printf("config reload: %v", msg.err)
		}
		if msg.cfg != nil {
			m.config = msg.cfg
			m.keys = newKeyMap(msg.cfg.Bindings)
			m.engine.Configure(msg.cfg.EngineOptions())
			m.engine.Handle(m.mode())
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Y != 0 {
			return m, nil
		}
		var ev engine.Mouse
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev = engine.Mouse{Kind: engine.LeftClick, Col: msg.X}
		case tea.MouseButtonWheelUp:
			ev = engine.Mouse{Kind: engine.ScrollUp}
		case tea.MouseButtonWheelDown:
			ev = engine.Mouse{Kind: engine.ScrollDown}
		default:
			return m, nil
		}
		debugLog.Printf("mouse %v at X=%d", ev.Kind, msg.X)
		m.engine.Handle(ev)
		return m, triggerRefresh()

	case tea.KeyMsg:
		if m.renaming {
			return m.updateRename(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(tabline.ScrollUp)
			return m, triggerRefresh()
		case key.Matches(msg, m.keys.Prev):
			m.step(tabline.ScrollDown)
			return m, triggerRefresh()
		case key.Matches(msg, m.keys.Rename):
			return m.startRename()
		}
	}
	return m, nil
}

func (m *model) refresh() {
	if session, err := m.backend.SessionName(); err == nil && session != m.session {
		m.session = session
		m.engine.Handle(m.mode())
	}
	tabs, indices, err := m.backend.Snapshot()
	if err != nil {
		debugLog.Printf("snapshot: %v", err)
		// the engine keeps the previous line for a snapshot without an active tab
		if !errors.Is(err, tmux.ErrNoActiveWindow) {
			return
		}
	}
	// indices must stay in step with the tabs the engine keeps
	if tabline.ActiveTab(tabs) != 0 {
		m.switcher.indices = indices
	}
	m.engine.Handle(engine.TabUpdate{Tabs: tabs})
}

// step moves one tab with the same clamping as the scroll wheel.
func (m *model) step(dir tabline.ScrollDirection) {
	active := m.engine.Active()
	if target := tabline.ScrollTarget(active, len(m.engine.Tabs()), dir); target != active {
		m.switcher.SwitchTab(target)
	}
}

func (m model) startRename() (tea.Model, tea.Cmd) {
	if m.engine.State() != engine.Ready {
		return m, nil
	}
	m.renaming = true
	m.input.SetValue("")
	cmd := m.input.Focus()
	m.engine.Handle(m.mode())
	return m, cmd
}

func (m *model) stopRename() {
	m.renaming = false
	m.input.Blur()
	m.engine.Handle(m.mode())
}

func (m model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		m.stopRename()
		if name == "" {
			return m, nil
		}
		if index, ok := m.switcher.windowIndex(m.engine.Active()); ok {
			if err := m.backend.RenameWindow(index, name); err != nil {
				debugLog.Printf("rename window %d: %v", index, err)
			}
		}
		return m, triggerRefresh()
	case tea.KeyEsc, tea.KeyCtrlC:
		m.stopRename()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var prompt string
	width := m.width
	if m.renaming {
		prompt = m.input.View()
		width -= ansi.StringWidth(prompt)
	}
	// the last column is left free so the terminal never wraps
	line := m.engine.Render(max(width-1, 0))
	return ansi.Truncate(line+prompt, m.width, "")
}

func (m model) tick() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func triggerRefresh() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}
