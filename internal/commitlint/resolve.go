package commitlint

import "fmt"

// Resolve flattens cfg into the rule map the linter actually applies. Presets
// are applied in extends order so a later preset overrides an earlier one, and
// the config's own rules override every preset.
func Resolve(cfg Config) (map[string]RuleSetting, error) {
	out := make(map[string]RuleSetting)

	for _, name := range cfg.Extends {
		p, err := LookupPreset(name)
		if err != nil {
			return nil, fmt.Errorf("resolve: %w", err)
		}
		for rule, setting := range p.Rules {
			out[rule] = setting
		}
	}

	for rule, setting := range cfg.Rules {
		out[rule] = setting.clone()
	}

	return out, nil
}

// Enabled returns the resolved rules whose level is not Off.
func Enabled(rules map[string]RuleSetting) map[string]RuleSetting {
	out := make(map[string]RuleSetting, len(rules))
	for name, r := range rules {
		if r.Level != Off {
			out[name] = r
		}
	}
	return out
}
