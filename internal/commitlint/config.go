package commitlint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	// ConventionalPreset is the shareable config the repository extends.
	ConventionalPreset = "@commitlint/config-conventional"

	RuleScopeEmpty = "scope-empty"
)

// Config is the commitlint configuration record.
type Config struct {
	Extends Extends                `json:"extends,omitempty" yaml:"extends,omitempty"`
	Rules   map[string]RuleSetting `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Default is the relaxed policy: Conventional Commits with the scope optional,
// so "feat: add x" and "feat(core): add x" are both accepted.
func Default() Config {
	return Config{
		Extends: Extends{ConventionalPreset},
		Rules: map[string]RuleSetting{
			RuleScopeEmpty: Rule(Off, Always),
		},
	}
}

// StrictScope is the strict policy: a commit without a parenthesised scope is
// rejected.
func StrictScope() Config {
	return Config{
		Extends: Extends{ConventionalPreset},
		Rules: map[string]RuleSetting{
			RuleScopeEmpty: Rule(Error, Never),
		},
	}
}

// ForScopePolicy picks one of the two shipped variants.
func ForScopePolicy(strict bool) Config {
	if strict {
		return StrictScope()
	}
	return Default()
}

func (c Config) Clone() Config {
	return Config{
		Extends: slices.Clone(c.Extends),
		Rules:   cloneRules(c.Rules),
	}
}

// RuleNames returns the configured rule names in sorted order.
func (c Config) RuleNames() []string {
	return slices.Sorted(maps.Keys(c.Rules))
}

// Extends is the ordered list of presets. commitlint also accepts a single
// string, so both forms decode.
type Extends []string

func (e *Extends) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*e = nil
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*e = Extends{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("extends must be a string or a list of strings: %w", err)
	}
	*e = many
	return nil
}

func (e *Extends) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var one string
		if err := node.Decode(&one); err != nil {
			return err
		}
		*e = Extends{one}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*e = many
		return nil
	default:
		return fmt.Errorf("line %d: extends must be a string or a list of strings", node.Line)
	}
}
