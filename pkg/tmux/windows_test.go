package tmux

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/b/tmux-tabline/pkg/tabline"
)

func joinFields(fields ...string) string {
	return strings.Join(fields, fieldSep)
}

// fakeTmux swaps run for a table of canned replies keyed by subcommand.
func fakeTmux(t *testing.T, replies map[string]string) *[][]string {
	t.Helper()
	var calls [][]string
	orig := run
	run = func(args ...string) (string, error) {
		calls = append(calls, args)
		out, ok := replies[args[0]]
		if !ok {
			return "", errors.New("unexpected command " + args[0])
		}
		return out, nil
	}
	t.Cleanup(func() { run = orig })
	return &calls
}

func TestParseWindows(t *testing.T) {
	out := strings.Join([]string{
		joinFields("@1", "0", "editor", "0", "0"),
		joinFields("@2", "1", "\x1b[31mlogs\x1b[0m", "1", "1"),
		joinFields("@3", "x", "bad index", "0", "0"),
		"short",
		"",
	}, "\n")

	got := parseWindows(out)
	want := []Window{
		{ID: "@1", Index: 0, Name: "editor"},
		{ID: "@2", Index: 1, Name: "logs", Active: true, Synchronized: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseWindows() = %+v, want %+v", got, want)
	}
}

func TestParseClients(t *testing.T) {
	out := strings.Join([]string{
		joinFields("/dev/pts/1", "work", "2"),
		joinFields("/dev/pts/2", "work", "nope"),
		joinFields("/dev/pts/3", "work", "0"),
	}, "\n")

	got := parseClients(out)
	want := []Client{
		{Name: "/dev/pts/1", Session: "work", WindowIndex: 2},
		{Name: "/dev/pts/3", Session: "work", WindowIndex: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseClients() = %+v, want %+v", got, want)
	}
}

func TestActiveWindow(t *testing.T) {
	if _, err := ActiveWindow([]Window{{Index: 1}}); !errors.Is(err, ErrNoActiveWindow) {
		t.Fatalf("expected ErrNoActiveWindow, got %v", err)
	}
	w, err := ActiveWindow([]Window{{Index: 1}, {Index: 4, Active: true}})
	if err != nil || w.Index != 4 {
		t.Fatalf("ActiveWindow() = %+v, %v", w, err)
	}
}

func TestClientRegistryPrefersHashedID(t *testing.T) {
	reg := NewClientRegistry()
	for _, name := range []string{"/dev/pts/1", "/dev/pts/2", "/dev/ttys004"} {
		reg.Sync([]string{name})
		if got, want := reg.ID(name), preferredID(name); got != want {
			t.Errorf("ID(%q) = %d, want preferred %d", name, got, want)
		}
	}
}

func TestClientRegistryCollision(t *testing.T) {
	// eleven names cannot all have distinct preferred ids
	seen := make(map[tabline.ClientID]string)
	var a, b string
	for i := 0; i <= badgeIDs; i++ {
		name := fmt.Sprintf("client-%d", i)
		if prev, ok := seen[preferredID(name)]; ok {
			a, b = prev, name
			break
		}
		seen[preferredID(name)] = name
	}
	if a == "" {
		t.Fatal("no colliding names found")
	}

	reg := NewClientRegistry()
	reg.Sync([]string{b, a})
	idA, idB := reg.ID(a), reg.ID(b)
	if idA == idB {
		t.Fatalf("%q and %q share id %d", a, b, idA)
	}
	if idA < 1 || idA > badgeIDs || idB < 1 || idB > badgeIDs {
		t.Fatalf("ids %d, %d outside the badge range", idA, idB)
	}

	// a fresh registry given the same clients in another order agrees
	other := NewClientRegistry()
	other.Sync([]string{a, b})
	if other.ID(a) != idA || other.ID(b) != idB {
		t.Fatalf("ids depend on listing order: %d,%d vs %d,%d", other.ID(a), other.ID(b), idA, idB)
	}
}

func TestClientRegistryReusesIDs(t *testing.T) {
	reg := NewClientRegistry()
	// forty clients come and go, never more than three at once
	for i := 0; i < 40; i += 3 {
		var names []string
		for j := i; j < i+3; j++ {
			names = append(names, fmt.Sprintf("/dev/pts/%d", j))
		}
		reg.Sync(names)
		used := make(map[tabline.ClientID]bool)
		for _, name := range names {
			id := reg.ID(name)
			if id < 1 || id > badgeIDs {
				t.Fatalf("round %d: %s got id %d outside the badge range", i, name, id)
			}
			if used[id] {
				t.Fatalf("round %d: id %d handed out twice", i, id)
			}
			used[id] = true
		}
	}
	if len(reg.ids) != 3 {
		t.Fatalf("registry kept %d clients, want the 3 attached", len(reg.ids))
	}
}

func TestClientRegistryOverflow(t *testing.T) {
	reg := NewClientRegistry()
	var names []string
	for i := 0; i < badgeIDs+2; i++ {
		names = append(names, fmt.Sprintf("c%02d", i))
	}
	reg.Sync(names)
	ids := make(map[tabline.ClientID]bool)
	for _, name := range names {
		ids[reg.ID(name)] = true
	}
	if len(ids) != len(names) {
		t.Fatalf("%d distinct ids for %d clients", len(ids), len(names))
	}
	for id := tabline.ClientID(1); id <= badgeIDs+2; id++ {
		if !ids[id] {
			t.Errorf("id %d unused", id)
		}
	}
}

func TestBuildTabs(t *testing.T) {
	windows := []Window{
		{Index: 1, Name: "one"},
		{Index: 3, Name: "three", Active: true, Synchronized: true},
		{Index: 7, Name: "seven"},
	}
	clients := []Client{
		{Name: "me", WindowIndex: 3},
		{Name: "bob", WindowIndex: 7},
		{Name: "amy", WindowIndex: 7},
		{Name: "cat", WindowIndex: 3},
	}
	reg := NewClientRegistry()
	reg.Sync([]string{"amy", "gone"}) // an earlier refresh

	tabs, indices := BuildTabs(windows, clients, "me", reg)

	amy, bob, cat := reg.ID("amy"), reg.ID("bob"), reg.ID("cat")
	seven := []tabline.ClientID{amy, bob}
	if bob < amy {
		seven = []tabline.ClientID{bob, amy}
	}
	want := []tabline.Tab{
		{Position: 1, Name: "one"},
		{Position: 2, Name: "three", Active: true, Sync: true, OtherClients: []tabline.ClientID{cat}},
		{Position: 3, Name: "seven", OtherClients: seven},
	}
	if !reflect.DeepEqual(tabs, want) {
		t.Fatalf("BuildTabs() tabs = %+v, want %+v", tabs, want)
	}
	if !reflect.DeepEqual(indices, []int{1, 3, 7}) {
		t.Fatalf("BuildTabs() indices = %v", indices)
	}
	if _, ok := reg.ids["gone"]; ok {
		t.Error("detached client still registered")
	}
	if _, ok := reg.ids["me"]; ok {
		t.Error("own client registered")
	}
}

func TestListTabs(t *testing.T) {
	fakeTmux(t, map[string]string{
		"list-windows":    joinFields("@1", "0", "a", "1", "0") + "\n" + joinFields("@2", "1", "b", "0", "0"),
		"display-message": "work",
		"list-clients":    joinFields("other", "work", "1"),
	})

	tabs, indices, err := ListTabs("self", NewClientRegistry())
	if err != nil {
		t.Fatalf("ListTabs() error: %v", err)
	}
	if len(tabs) != 2 || !tabs[0].Active || tabs[1].Name != "b" {
		t.Fatalf("unexpected tabs %+v", tabs)
	}
	if !reflect.DeepEqual(tabs[1].OtherClients, []tabline.ClientID{preferredID("other")}) {
		t.Fatalf("other clients = %v", tabs[1].OtherClients)
	}
	if !reflect.DeepEqual(indices, []int{0, 1}) {
		t.Fatalf("indices = %v", indices)
	}
}

func TestListTabsWithoutClients(t *testing.T) {
	fakeTmux(t, map[string]string{
		"list-windows":    joinFields("@1", "0", "a", "1", "0"),
		"display-message": "work",
	})

	tabs, _, err := ListTabs("self", NewClientRegistry())
	if err != nil {
		t.Fatalf("client listing failure should not fail ListTabs: %v", err)
	}
	if len(tabs) != 1 || len(tabs[0].OtherClients) != 0 {
		t.Fatalf("unexpected tabs %+v", tabs)
	}
}

func TestListTabsWithoutActiveWindow(t *testing.T) {
	fakeTmux(t, map[string]string{
		"list-windows":    joinFields("@1", "0", "a", "0", "0") + "\n" + joinFields("@2", "1", "b", "0", "0"),
		"display-message": "work",
	})

	tabs, indices, err := ListTabs("self", NewClientRegistry())
	if !errors.Is(err, ErrNoActiveWindow) {
		t.Fatalf("expected ErrNoActiveWindow, got %v", err)
	}
	if len(tabs) != 2 || !reflect.DeepEqual(indices, []int{0, 1}) {
		t.Fatalf("tabs should still be returned: %+v %v", tabs, indices)
	}
}

func TestCommands(t *testing.T) {
	calls := fakeTmux(t, map[string]string{
		"select-window":   "",
		"rename-window":   "",
		"display-message": "120",
	})

	if err := SelectWindow(3); err != nil {
		t.Fatal(err)
	}
	if err := RenameWindow(3, "new name"); err != nil {
		t.Fatal(err)
	}
	if w, err := ClientWidth(); err != nil || w != 120 {
		t.Fatalf("ClientWidth() = %d, %v", w, err)
	}

	want := [][]string{
		{"select-window", "-t", ":3"},
		{"rename-window", "-t", ":3", "new name"},
		{"display-message", "-p", "#{client_width}"},
	}
	if !reflect.DeepEqual(*calls, want) {
		t.Fatalf("calls = %q, want %q", *calls, want)
	}
}
