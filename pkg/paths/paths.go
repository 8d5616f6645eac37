// Package paths resolves where tabline reads its config and writes logs and
// runtime files.
//
//	Config:  ~/.config/tabline/config.yaml   (override: TABLINE_CONFIG_DIR)
//	State:   ~/.local/state/tabline/         (override: TABLINE_STATE_DIR)
//	Runtime: $TMPDIR/tabline-<uid>/          (override: TABLINE_RUNTIME_DIR)
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

const appName = "tabline"

var (
	configDirOnce   sync.Once
	configDirCached string

	stateDirOnce   sync.Once
	stateDirCached string

	runtimeDirOnce   sync.Once
	runtimeDirCached string
)

// homeRelative joins elem under the user's home, or under "." when the home
// directory is unknown.
func homeRelative(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(append([]string{home}, elem...)...)
}

// ConfigDir resolves the config directory.
// Priority: TABLINE_CONFIG_DIR env > ~/.config/tabline/
func ConfigDir() string {
	configDirOnce.Do(func() {
		if env := os.Getenv("TABLINE_CONFIG_DIR"); env != "" {
			configDirCached = env
			return
		}
		configDirCached = homeRelative(".config", appName)
	})
	return configDirCached
}

// StateDir resolves the directory for logs.
// Priority: TABLINE_STATE_DIR env > ~/.local/state/tabline/
func StateDir() string {
	stateDirOnce.Do(func() {
		if env := os.Getenv("TABLINE_STATE_DIR"); env != "" {
			stateDirCached = env
			return
		}
		stateDirCached = homeRelative(".local", "state", appName)
	})
	return stateDirCached
}

// RuntimeDir resolves the per-user directory for pid files.
func RuntimeDir() string {
	runtimeDirOnce.Do(func() {
		if env := os.Getenv("TABLINE_RUNTIME_DIR"); env != "" {
			runtimeDirCached = env
			return
		}
		runtimeDirCached = filepath.Join(os.TempDir(), appName+"-"+strconv.Itoa(os.Getuid()))
	})
	return runtimeDirCached
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StatePath returns the full path to a file in the state dir (e.g. "debug.log").
func StatePath(filename string) string {
	return filepath.Join(StateDir(), filename)
}

// PidPath returns the pid file of the tab line pane serving a tmux session.
// tmux hooks signal that process to request a refresh.
func PidPath(session string) string {
	if session == "" {
		session = "default"
	}
	return filepath.Join(RuntimeDir(), session+".pid")
}

func ensureDir(kind, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s dir %s: %w", kind, dir, err)
	}
	return dir, nil
}

// EnsureStateDir creates the state directory if it doesn't exist and returns its path.
func EnsureStateDir() (string, error) {
	return ensureDir("state", StateDir())
}

// EnsureRuntimeDir creates the runtime directory if it doesn't exist and returns its path.
func EnsureRuntimeDir() (string, error) {
	return ensureDir("runtime", RuntimeDir())
}

// ResetForTest clears cached values so tests can re-run resolution logic.
// Only use in tests.
func ResetForTest() {
	configDirOnce = sync.Once{}
	configDirCached = ""
	stateDirOnce = sync.Once{}
	stateDirCached = ""
	runtimeDirOnce = sync.Once{}
	runtimeDirCached = ""
}
