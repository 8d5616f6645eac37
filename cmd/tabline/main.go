// Command tabline runs the tab line as a one row tmux pane with mouse and
// keyboard control.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/b/tmux-tabline/pkg/colors"
	"github.com/b/tmux-tabline/pkg/config"
	"github.com/b/tmux-tabline/pkg/paths"
	"github.com/b/tmux-tabline/pkg/tmux"
)

var (
	configPath = flag.String("config", "", "config file (default: ~/.config/tabline/config.yaml)")
	refresh    = flag.Duration("refresh", 2*time.Second, "tmux poll interval, 0 to rely on SIGUSR1 only")
	debugMode  = flag.Bool("debug", false, "Enable debug logging")
)

var debugLog = log.New(io.Discard, "", 0)

func initDebugLog() {
	if !*debugMode {
		return
	}
	// Write debug log to file instead of stderr to avoid corrupting the display
	if _, err := paths.EnsureStateDir(); err == nil {
		logFile, err := os.OpenFile(paths.StatePath("tabline-debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			debugLog = log.New(logFile, "[tabline] ", log.LstdFlags|log.Lmicroseconds)
			return
		}
	}
	debugLog = log.New(os.Stderr, "[tabline] ", log.LstdFlags|log.Lmicroseconds)
}

// loadConfig reads the file and overlays the @tabline-* tmux options.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(path)
	if opts, optErr := tmux.ShowOptions(); optErr == nil {
		cfg.Apply(opts)
	}
	return cfg, err
}

// writePidFile lets tmux hooks request a refresh with
// kill -USR1 $(cat <runtime dir>/<session>.pid).
func writePidFile(session string) (string, error) {
	if _, err := paths.EnsureRuntimeDir(); err != nil {
		return "", err
	}
	path := paths.PidPath(session)
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		return "", fmt.Errorf("write pid file: %w", err)
	}
	return path, nil
}

func main() {
	flag.Parse()
	initDebugLog()

	path := *configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := loadConfig(path)
	if err != nil {
		debugLog.Printf("config: %v", err)
	}

	// Detect the background before bubbletea owns the terminal
	detector := colors.NewBackgroundDetector(colors.ThemeModeAuto)
	debugLog.Printf("background: %s", detector.Detect())

	self, err := tmux.CurrentClient()
	if err != nil {
		debugLog.Printf("current client: %v", err)
	}
	session, _ := tmux.SessionName()
	if pidPath, err := writePidFile(session); err != nil {
		debugLog.Printf("pid file: %v", err)
	} else {
		defer os.Remove(pidPath)
	}

	b := tmuxBackend{self: self, clients: tmux.NewClientRegistry()}
	m := newModel(cfg, b, detector, termenv.EnvColorProfile(), *refresh)
	p := tea.NewProgram(m, tea.WithMouseCellMotion())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGUSR1)
	go func() {
		for range sigChan {
			p.Send(refreshMsg{})
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err = config.Watch(ctx, path, func(_ *config.Config, err error) {
		if err != nil {
			p.Send(configMsg{err: err})
			return
		}
		cfg, err := loadConfig(path)
		p.Send(configMsg{cfg: cfg, err: err})
	})
	if err != nil {
		debugLog.Printf("config watch: %v", err)
	}

	debugLog.Printf("Starting tab line for session %q client %q", session, self)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
