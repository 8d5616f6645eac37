package config

import (
	"github.com/b/tmux-tabline/pkg/engine"
	"github.com/b/tmux-tabline/pkg/paths"
	"github.com/b/tmux-tabline/pkg/style"
	"github.com/b/tmux-tabline/pkg/tabline"
)

type Config struct {
	Theme             string              `yaml:"theme"`
	HideSessionName   bool                `yaml:"hide_session_name"`
	Session           Session             `yaml:"session"`
	Overflow          Overflow            `yaml:"overflow"`
	RenamePlaceholder string              `yaml:"rename_placeholder"`
	Bindings          Bindings            `yaml:"bindings"`
	Segment           style.SegmentConfig `yaml:"segment"`
}

// Session decorates the session name shown before the tabs.
type Session struct {
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
}

// Overflow holds the markers for tabs hidden on either side.
type Overflow struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Bindings are the keys of the interactive tab line pane.
type Bindings struct {
	NextTab string `yaml:"next_tab"`
	PrevTab string `yaml:"prev_tab"`
	Rename  string `yaml:"rename"`
	Quit    string `yaml:"quit"`
}

func DefaultConfigPath() string {
	return paths.ConfigPath()
}

// EngineOptions maps the file settings onto the engine's options.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		Segment:           c.Segment,
		SessionPrefix:     c.Session.Prefix,
		SessionSuffix:     c.Session.Suffix,
		LeftIndicator:     c.Overflow.Left,
		RightIndicator:    c.Overflow.Right,
		RenamePlaceholder: c.RenamePlaceholder,
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Theme == "" {
		cfg.Theme = "auto"
	}
	if cfg.Session.Prefix == "" {
		cfg.Session.Prefix = tabline.DefaultSessionPrefix
	}
	if cfg.Session.Suffix == "" {
		cfg.Session.Suffix = tabline.DefaultSessionSuffix
	}
	if cfg.Overflow.Left == "" {
		cfg.Overflow.Left = tabline.DefaultLeftIndicator
	}
	if cfg.Overflow.Right == "" {
		cfg.Overflow.Right = tabline.DefaultRightIndicator
	}
	if cfg.RenamePlaceholder == "" {
		cfg.RenamePlaceholder = tabline.DefaultRenamePlaceholder
	}
	if cfg.Bindings.NextTab == "" {
		cfg.Bindings.NextTab = "l"
	}
	if cfg.Bindings.PrevTab == "" {
		cfg.Bindings.PrevTab = "h"
	}
	if cfg.Bindings.Rename == "" {
		cfg.Bindings.Rename = "r"
	}
	if cfg.Bindings.Quit == "" {
		cfg.Bindings.Quit = "q"
	}
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}
