// Package tmux reads the window list of the current tmux session and sends
// the commands the tab line needs.
package tmux

import (
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/b/tmux-tabline/pkg/tabline"
)

var ErrNoActiveWindow = errors.New("no active window")

const fieldSep = "\x1f"

// run executes tmux and returns its trimmed stdout.
var run = func(args ...string) (string, error) {
	out, err := exec.Command("tmux", args...).Output()
	if err != nil {
		return "", fmt.Errorf("tmux %s failed: %w", args[0], err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

type Window struct {
	ID           string
	Index        int
	Name         string
	Active       bool
	Synchronized bool // synchronize-panes on the active pane
}

// Client is an attached tmux client and the window it is looking at.
type Client struct {
	Name        string
	Session     string
	WindowIndex int
}

const windowFormat = "#{window_id}" + fieldSep + "#{window_index}" + fieldSep + "#{window_name}" + fieldSep +
	"#{window_active}" + fieldSep + "#{pane_synchronized}"

const clientFormat = "#{client_name}" + fieldSep + "#{client_session}" + fieldSep + "#{window_index}"

func ListWindows() ([]Window, error) {
	out, err := run("list-windows", "-F", windowFormat)
	if err != nil {
		return nil, err
	}
	return parseWindows(out), nil
}

func parseWindows(out string) []Window {
	var windows []Window
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, fieldSep)
		if len(parts) < 5 {
			continue
		}
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		windows = append(windows, Window{
			ID:           parts[0],
			Index:        index,
			Name:         ansi.Strip(parts[2]),
			Active:       parts[3] == "1",
			Synchronized: parts[4] == "1",
		})
	}
	return windows
}

// ListClients returns the clients attached to session, or to every session
// when session is empty.
func ListClients(session string) ([]Client, error) {
	args := []string{"list-clients", "-F", clientFormat}
	if session != "" {
		args = append(args, "-t", session)
	}
	out, err := run(args...)
	if err != nil {
		return nil, err
	}
	return parseClients(out), nil
}

func parseClients(out string) []Client {
	var clients []Client
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, fieldSep)
		if len(parts) < 3 {
			continue
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}
		clients = append(clients, Client{Name: parts[0], Session: parts[1], WindowIndex: index})
	}
	return clients
}

// ActiveWindow returns the active window of a listing.
func ActiveWindow(windows []Window) (Window, error) {
	for _, w := range windows {
		if w.Active {
			return w, nil
		}
	}
	return Window{}, ErrNoActiveWindow
}

// badgeIDs is how many client ids have a badge color.
const badgeIDs = 10

// ClientRegistry hands out small ids to attached clients. A client's
// preferred id is derived from a hash of its name, so separate runs agree on
// it; on a collision the next free id is taken. Ids of clients that have
// left are freed by Sync and reused.
type ClientRegistry struct {
	mu  sync.Mutex
	ids map[string]tabline.ClientID
}

func NewClientRegistry() *ClientRegistry {
	return &ClientRegistry{ids: make(map[string]tabline.ClientID)}
}

func preferredID(name string) tabline.ClientID {
	return tabline.ClientID(xxhash.Sum64String(name)%badgeIDs) + 1
}

// Sync forgets clients missing from names and assigns ids to new ones in
// name order, so the same set of clients always gets the same ids.
func (r *ClientRegistry) Sync(names []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	attached := make(map[string]bool, len(names))
	for _, name := range names {
		attached[name] = true
	}
	for name := range r.ids {
		if !attached[name] {
			delete(r.ids, name)
		}
	}

	fresh := make([]string, 0, len(attached))
	for name := range attached {
		if _, ok := r.ids[name]; !ok {
			fresh = append(fresh, name)
		}
	}
	sort.Strings(fresh)
	for _, name := range fresh {
		r.ids[name] = r.freeID(name)
	}
}

// ID returns the id of name, assigning one if needed.
func (r *ClientRegistry) ID(name string) tabline.ClientID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := r.freeID(name)
	r.ids[name] = id
	return id
}

// freeID walks from the preferred id through the badge ids; with more
// clients than badges it continues past them. Callers hold mu.
func (r *ClientRegistry) freeID(name string) tabline.ClientID {
	used := make(map[tabline.ClientID]bool, len(r.ids))
	for _, id := range r.ids {
		used[id] = true
	}
	start := preferredID(name)
	for i := tabline.ClientID(0); i < badgeIDs; i++ {
		if id := (start-1+i)%badgeIDs + 1; !used[id] {
			return id
		}
	}
	id := tabline.ClientID(badgeIDs + 1)
	for used[id] {
		id++
	}
	return id
}

// BuildTabs turns a window listing into a tab snapshot. Positions are
// 1-based in listing order; the second result maps position-1 to the tmux
// window index. Clients other than self are attached to the window they
// view.
func BuildTabs(windows []Window, clients []Client, self string, reg *ClientRegistry) ([]tabline.Tab, []int) {
	var others []Client
	names := make([]string, 0, len(clients))
	for _, c := range clients {
		if c.Name == self {
			continue
		}
		others = append(others, c)
		names = append(names, c.Name)
	}
	reg.Sync(names)

	byWindow := make(map[int][]tabline.ClientID)
	for _, c := range others {
		byWindow[c.WindowIndex] = append(byWindow[c.WindowIndex], reg.ID(c.Name))
	}

	tabs := make([]tabline.Tab, 0, len(windows))
	indices := make([]int, 0, len(windows))
	for i, w := range windows {
		others := byWindow[w.Index]
		sort.Slice(others, func(a, b int) bool { return others[a] < others[b] })
		tabs = append(tabs, tabline.Tab{
			Position:     i + 1,
			Name:         w.Name,
			Active:       w.Active,
			Sync:         w.Synchronized,
			OtherClients: others,
		})
		indices = append(indices, w.Index)
	}
	return tabs, indices
}

// ListTabs snapshots the current session. self is the client running the
// tab line; it is never shown as another client. A listing without an
// active window, as seen while tmux switches windows, still returns the tabs
// together with ErrNoActiveWindow.
func ListTabs(self string, reg *ClientRegistry) ([]tabline.Tab, []int, error) {
	windows, err := ListWindows()
	if err != nil {
		return nil, nil, err
	}
	session, err := SessionName()
	if err != nil {
		return nil, nil, err
	}
	// a client listing failure only costs the badges
	clients, _ := ListClients(session)
	tabs, indices := BuildTabs(windows, clients, self, reg)
	if _, err := ActiveWindow(windows); err != nil {
		return tabs, indices, fmt.Errorf("session %s: %w", session, err)
	}
	return tabs, indices, nil
}

func SelectWindow(index int) error {
	_, err := run("select-window", "-t", fmt.Sprintf(":%d", index))
	return err
}

func RenameWindow(index int, name string) error {
	_, err := run("rename-window", "-t", fmt.Sprintf(":%d", index), name)
	return err
}

// SessionName returns the name of the current session.
func SessionName() (string, error) {
	return run("display-message", "-p", "#{session_name}")
}

// CurrentClient returns the name of the client the command runs under.
func CurrentClient() (string, error) {
	return run("display-message", "-p", "#{client_name}")
}

// ClientWidth returns the width of the current client in cells.
func ClientWidth() (int, error) {
	out, err := run("display-message", "-p", "#{client_width}")
	if err != nil {
		return 0, err
	}
	w, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, fmt.Errorf("bad client width %q: %w", out, err)
	}
	return w, nil
}
