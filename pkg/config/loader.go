package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/b/tmux-tabline/pkg/style"
)

var ErrNoConfig = errors.New("config file not found")

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoConfig, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadOrDefault is LoadConfig for hosts: a missing file is not an error, and
// on a broken file the defaults come back together with the error so the
// caller can log it and carry on.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, ErrNoConfig):
		return Default(), nil
	default:
		return Default(), err
	}
}

// SaveConfig writes the config to the specified path
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Option keys understood by Apply. They mirror the YAML layout, flattened.
const (
	KeySegment           = "segment"
	KeyTheme             = "theme"
	KeyHideSessionName   = "hide_session_name"
	KeySessionPrefix     = "session_prefix"
	KeySessionSuffix     = "session_suffix"
	KeyOverflowLeft      = "overflow_left"
	KeyOverflowRight     = "overflow_right"
	KeyRenamePlaceholder = "rename_placeholder"
)

// Apply overlays a flat string option map, such as tmux user options or
// -o flags. Unknown keys and malformed values are ignored.
func (c *Config) Apply(opts map[string]string) {
	for key, val := range opts {
		switch strings.ToLower(strings.TrimSpace(key)) {
		case KeySegment:
			c.Segment = style.DecodeSegmentConfig(val)
		case KeyTheme:
			if val != "" {
				c.Theme = val
			}
		case KeyHideSessionName:
			if b, ok := parseBool(val); ok {
				c.HideSessionName = b
			}
		case KeySessionPrefix:
			c.Session.Prefix = val
		case KeySessionSuffix:
			c.Session.Suffix = val
		case KeyOverflowLeft:
			c.Overflow.Left = val
		case KeyOverflowRight:
			c.Overflow.Right = val
		case KeyRenamePlaceholder:
			c.RenamePlaceholder = val
		}
	}
	applyDefaults(c)
}

// parseBool accepts Go's spellings plus tmux's on/off.
func parseBool(v string) (bool, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "on", "yes":
		return true, true
	case "off", "no":
		return false, true
	}
	b, err := strconv.ParseBool(v)
	return b, err == nil
}

// FromMap builds a config from a flat option map alone.
func FromMap(opts map[string]string) *Config {
	cfg := Default()
	cfg.Apply(opts)
	return cfg
}

// Watch calls fn with a freshly loaded config each time the file at path is
// written, created or replaced, until ctx is done. The parent directory is
// watched so editors that save by rename are picked up.
func Watch(ctx context.Context, path string, fn func(*Config, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				fn(LoadOrDefault(path))
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}
