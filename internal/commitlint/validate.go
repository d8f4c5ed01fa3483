package commitlint

import (
	"errors"
	"fmt"
	"strings"
)

// Validate reports every problem in cfg at once. Each joined error wraps one
// of the package sentinels so callers can test with errors.Is.
func Validate(cfg Config) error {
	var errs []error

	for i, name := range cfg.Extends {
		if _, err := LookupPreset(name); err != nil {
			errs = append(errs, fmt.Errorf("extends[%d]: %w", i, err))
		}
	}

	for _, name := range cfg.RuleNames() {
		if err := validateRule(name, cfg.Rules[name]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func validateRule(name string, r RuleSetting) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyRuleName
	}

	var errs []error
	if !KnownRule(name) {
		errs = append(errs, fmt.Errorf("rules[%s]: %w", name, ErrUnknownRule))
	}
	if !r.Level.Valid() {
		errs = append(errs, fmt.Errorf("rules[%s]: %w: %d (want 0, 1 or 2)", name, ErrInvalidSeverity, int(r.Level)))
	}
	if !r.When.Valid() {
		errs = append(errs, fmt.Errorf("rules[%s]: %w: %q (want %q or %q)", name, ErrInvalidApplicability, r.When, Always, Never))
	}
	return errors.Join(errs...)
}
