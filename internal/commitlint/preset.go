package commitlint

import (
	"fmt"
	"maps"
	"slices"
)

// Preset is a named shareable config that a Config can extend.
type Preset struct {
	Name  string
	Rules map[string]RuleSetting
}

var conventionalTypes = []any{
	"build", "chore", "ci", "docs", "feat", "fix",
	"perf", "refactor", "revert", "style", "test",
}

var presets = map[string]Preset{
	ConventionalPreset: {
		Name: ConventionalPreset,
		Rules: map[string]RuleSetting{
			"body-leading-blank":     Rule(Warning, Always),
			"body-max-line-length":   RuleWithValue(Error, Always, 100),
			"footer-leading-blank":   Rule(Warning, Always),
			"footer-max-line-length": RuleWithValue(Error, Always, 100),
			"header-max-length":      RuleWithValue(Error, Always, 100),
			"header-trim":            Rule(Error, Always),
			"subject-case": RuleWithValue(Error, Never, []any{
				"sentence-case", "start-case", "pascal-case", "upper-case",
			}),
			"subject-empty":     Rule(Error, Never),
			"subject-full-stop": RuleWithValue(Error, Never, "."),
			"type-case":         RuleWithValue(Error, Always, "lower-case"),
			"type-empty":        Rule(Error, Never),
			"type-enum":         RuleWithValue(Error, Always, conventionalTypes),
		},
	},
}

// knownRules is the rule catalogue of the consuming linter.
var knownRules = map[string]struct{}{}

func init() {
	for _, name := range []string{
		"body-case", "body-empty", "body-full-stop", "body-leading-blank",
		"body-max-length", "body-max-line-length", "body-min-length",
		"footer-empty", "footer-leading-blank", "footer-max-length",
		"footer-max-line-length", "footer-min-length",
		"header-case", "header-full-stop", "header-max-length",
		"header-min-length", "header-trim",
		"references-empty",
		"scope-case", "scope-empty", "scope-enum", "scope-max-length", "scope-min-length",
		"signed-off-by",
		"subject-case", "subject-empty", "subject-exclamation-mark", "subject-full-stop",
		"subject-max-length", "subject-min-length",
		"trailer-exists",
		"type-case", "type-empty", "type-enum", "type-max-length", "type-min-length",
	} {
		knownRules[name] = struct{}{}
	}
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return Preset{Name: p.Name, Rules: cloneRules(p.Rules)}, nil
}

// PresetNames lists the registered presets.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}

func KnownRule(name string) bool {
	_, ok := knownRules[name]
	return ok
}

// KnownRules lists the rule catalogue in sorted order.
func KnownRules() []string {
	return slices.Sorted(maps.Keys(knownRules))
}
