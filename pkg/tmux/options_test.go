package tmux

import (
	"reflect"
	"testing"
)

func TestParseOptions(t *testing.T) {
	out := `status on
@tabline-theme nord
@tabline-hide-session-name on
@tabline-segment "{\"tab_name\": \"[{}]\"}"
@tabline-overflow-left '<< '
@other-plugin x
`
	got := parseOptions(out)
	want := map[string]string{
		"theme":             "nord",
		"hide_session_name": "on",
		"segment":           `{"tab_name": "[{}]"}`,
		"overflow_left":     "<< ",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseOptions() = %#v, want %#v", got, want)
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`plain`, "plain"},
		{`"quoted"`, "quoted"},
		{`"bad \q"`, `bad \q`},
		{`'single'`, "single"},
		{`"`, `"`},
	}
	for _, tt := range tests {
		if got := unquote(tt.in); got != tt.want {
			t.Errorf("unquote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
