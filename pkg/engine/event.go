package engine

import (
	"github.com/muesli/termenv"

	"github.com/b/tmux-tabline/pkg/colors"
	"github.com/b/tmux-tabline/pkg/tabline"
)

// Event is anything the host feeds into the engine.
type Event interface {
	isEvent()
}

// ModeUpdate carries the palette and interface mode. Every ModeUpdate
// rebuilds the theme.
type ModeUpdate struct {
	Palette         colors.Palette
	Renaming        bool
	SessionName     string
	HideSessionName bool
	Profile         termenv.Profile
}

// TabUpdate carries a full tab snapshot in position order.
type TabUpdate struct {
	Tabs []tabline.Tab
}

// MouseKind is the pointer action of a Mouse event.
type MouseKind int

const (
	LeftClick MouseKind = iota
	ScrollUp
	ScrollDown
)

func (k MouseKind) String() string {
	switch k {
	case LeftClick:
		return "left-click"
	case ScrollUp:
		return "scroll-up"
	case ScrollDown:
		return "scroll-down"
	}
	return "unknown"
}

// Mouse is a pointer event. Col is only meaningful for LeftClick.
type Mouse struct {
	Kind MouseKind
	Col  int
}

func (ModeUpdate) isEvent() {}
func (TabUpdate) isEvent()  {}
func (Mouse) isEvent()      {}
