package style

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/b/tmux-tabline/pkg/colors"
)

// The unmarshalers below never return an error: a malformed value is left
// unset so it falls through the cascade.

// UnmarshalYAML decodes {foreground, background, inverted}.
func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	*s = Style{}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		val := node.Content[i+1]
		switch strings.ToLower(node.Content[i].Value) {
		case "foreground", "fg":
			if c, ok := colors.DecodeColor(val); ok {
				s.Foreground = &c
			}
		case "background", "bg":
			if c, ok := colors.DecodeColor(val); ok {
				s.Background = &c
			}
		case "inverted", "reverse":
			var b bool
			if err := val.Decode(&b); err == nil {
				s.Inverted = &b
			}
		}
	}
	return nil
}

// UnmarshalYAML decodes {active, inactive}.
func (a *AllStyles) UnmarshalYAML(node *yaml.Node) error {
	*a = AllStyles{}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		val := node.Content[i+1]
		switch strings.ToLower(node.Content[i].Value) {
		case "active", "active_style":
			_ = val.Decode(&a.Active)
		case "inactive", "inactive_style":
			_ = val.Decode(&a.Inactive)
		}
	}
	return nil
}

// UnmarshalYAML decodes {text, active_style, inactive_style}. A bare scalar
// is shorthand for the text alone.
func (p *SegmentPart) UnmarshalYAML(node *yaml.Node) error {
	*p = SegmentPart{}
	switch node.Kind {
	case yaml.ScalarNode:
		p.Text = node.Value
		return nil
	case yaml.MappingNode:
	default:
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		val := node.Content[i+1]
		switch strings.ToLower(node.Content[i].Value) {
		case "text":
			if val.Kind == yaml.ScalarNode {
				p.Text = val.Value
			}
		case "active_style", "active":
			if val.Kind == yaml.MappingNode {
				var s Style
				_ = val.Decode(&s)
				p.Active = &s
			}
		case "inactive_style", "inactive":
			if val.Kind == yaml.MappingNode {
				var s Style
				_ = val.Decode(&s)
				p.Inactive = &s
			}
		}
	}
	return nil
}

// DecodeSegmentConfig parses the "segment" option. JSON works too since it
// is a subset of YAML. Anything unparseable yields the empty config.
func DecodeSegmentConfig(raw string) SegmentConfig {
	var cfg SegmentConfig
	if strings.TrimSpace(raw) == "" {
		return cfg
	}
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		return SegmentConfig{}
	}
	return cfg
}
