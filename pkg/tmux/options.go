package tmux

import (
	"strconv"
	"strings"
)

// OptionPrefix marks the global user options the tab line reads, e.g.
// "@tabline-theme".
const OptionPrefix = "@tabline-"

// ShowOptions returns the global user options starting with OptionPrefix,
// keyed by the rest of the name with dashes turned into underscores.
func ShowOptions() (map[string]string, error) {
	out, err := run("show-options", "-g")
	if err != nil {
		return nil, err
	}
	return parseOptions(out), nil
}

func parseOptions(out string) map[string]string {
	opts := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		name, value, ok := strings.Cut(line, " ")
		if !ok || !strings.HasPrefix(name, OptionPrefix) {
			continue
		}
		key := strings.ReplaceAll(strings.TrimPrefix(name, OptionPrefix), "-", "_")
		opts[key] = unquote(value)
	}
	return opts
}

func unquote(v string) string {
	v = strings.TrimSpace(v)
	if len(v) < 2 {
		return v
	}
	switch {
	case v[0] == '"' && v[len(v)-1] == '"':
		if s, err := strconv.Unquote(v); err == nil {
			return s
		}
		return v[1 : len(v)-1]
	case v[0] == '\'' && v[len(v)-1] == '\'':
		return v[1 : len(v)-1]
	}
	return v
}
