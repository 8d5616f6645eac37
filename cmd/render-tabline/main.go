// Command render-tabline prints the tab line once, for tmux status-format or
// a shell prompt, and handles status line clicks with -click.
//
//	set -g status-format[0] "#(render-tabline -format tmux)"
//	bind -n MouseDown1Status run-shell "render-tabline -click #{mouse_x}"
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/b/tmux-tabline/pkg/colors"
	"github.com/b/tmux-tabline/pkg/config"
	"github.com/b/tmux-tabline/pkg/engine"
	"github.com/b/tmux-tabline/pkg/style"
	"github.com/b/tmux-tabline/pkg/tabline"
	"github.com/b/tmux-tabline/pkg/tmux"
)

// optionFlags collects repeated -o key=value flags.
type optionFlags map[string]string

func (o optionFlags) String() string {
	pairs := make([]string, 0, len(o))
	for k, v := range o {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (o optionFlags) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	o[strings.TrimSpace(k)] = v
	return nil
}

var (
	configPath = flag.String("config", "", "config file (default: ~/.config/tabline/config.yaml)")
	width      = flag.Int("width", 0, "columns to fill (default: tmux client width, then terminal width)")
	format     = flag.String("format", "ansi", "output format: ansi, tmux or plain")
	click      = flag.Int("click", -1, "select the window under this column instead of printing")
	initConfig = flag.Bool("init", false, "write the default config file if none exists")
	listThemes = flag.Bool("themes", false, "list the built-in themes and exit")
	debugMode  = flag.Bool("debug", false, "Enable debug logging")
	options    = optionFlags{}
)

var debugLog = log.New(io.Discard, "", 0)

// snapshot is everything read from tmux for one render.
type snapshot struct {
	session string
	tabs    []tabline.Tab
	indices []int
}

// painterFor maps -format to a painter and color profile.
func painterFor(format string) (style.Painter, termenv.Profile, error) {
	switch format {
	case "ansi":
		return nil, termenv.TrueColor, nil
	case "tmux":
		return style.TmuxPainter{}, termenv.TrueColor, nil
	case "plain":
		return nil, termenv.Ascii, nil
	}
	return nil, termenv.Ascii, fmt.Errorf("unknown format %q", format)
}

// buildEngine feeds one snapshot through a fresh engine. selectWindow
// receives tmux window indices for tab switches.
func buildEngine(cfg *config.Config, painter style.Painter, profile termenv.Profile, palette colors.Palette, snap snapshot, selectWindow func(int) error) *engine.Engine {
	opts := cfg.EngineOptions()
	opts.Painter = painter

	host := engine.HostFunc(func(position int) {
		if position < 1 || position > len(snap.indices) {
			return
		}
		index := snap.indices[position-1]
		if err := selectWindow(index); err != nil {
			debugLog.Printf("select window %d: %v", index, err)
		}
	})

	e := engine.New(opts, host, debugLog)
	e.Handle(engine.ModeUpdate{
		Palette:         palette,
		SessionName:     snap.session,
		HideSessionName: cfg.HideSessionName,
		Profile:         profile,
	})
	e.Handle(engine.TabUpdate{Tabs: snap.tabs})
	return e
}

func resolveWidth(flagWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if w, err := tmux.ClientWidth(); err == nil && w > 0 {
		return w
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func readSnapshot() (snapshot, error) {
	self, _ := tmux.CurrentClient()
	tabs, indices, err := tmux.ListTabs(self, tmux.NewClientRegistry())
	if err != nil {
		return snapshot{}, err
	}
	session, _ := tmux.SessionName()
	return snapshot{session: session, tabs: tabs, indices: indices}, nil
}

func writeDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return config.SaveConfig(path, config.Default())
}

// writeThemes prints the names accepted by the theme option.
func writeThemes(w io.Writer) {
	fmt.Fprintf(w, "%-16s %s\n", colors.ThemeModeAuto, "dark or light, from the terminal background")
	for _, name := range colors.ListThemes() {
		fmt.Fprintf(w, "%-16s %s\n", name, colors.GetTheme(name).Description)
	}
}

func main() {
	flag.Var(options, "o", "option override key=value (repeatable)")
	flag.Parse()

	if *debugMode {
		debugLog = log.New(os.Stderr, "[render-tabline] ", log.LstdFlags|log.Lmicroseconds)
	}

	if *listThemes {
		writeThemes(os.Stdout)
		return
	}

	path := *configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if *initConfig {
		if err := writeDefaultConfig(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	painter, profile, err := painterFor(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		debugLog.Printf("config: %v", err)
	}
	if opts, err := tmux.ShowOptions(); err == nil {
		cfg.Apply(opts)
	}
	cfg.Apply(options)

	snap, err := readSnapshot()
	if err != nil {
		debugLog.Printf("snapshot: %v", err)
		os.Exit(1)
	}

	detector := colors.NewBackgroundDetector(colors.ThemeModeAuto)
	palette := colors.ThemeFor(cfg.Theme, detector).Palette
	if cfg.Theme == "" || cfg.Theme == string(colors.ThemeModeAuto) {
		debugLog.Printf("background: %s", detector.Detect())
	}
	e := buildEngine(cfg, painter, profile, palette, snap, tmux.SelectWindow)
	out := e.Render(resolveWidth(*width))

	if *click >= 0 {
		e.Handle(engine.Mouse{Kind: engine.LeftClick, Col: *click})
		return
	}
	fmt.Print(out)
}
