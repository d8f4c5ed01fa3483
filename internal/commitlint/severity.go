// Package commitlint models the commit-message lint configuration consumed by
// commitlint: the presets a config extends and the per-rule settings layered on
// top. It validates, resolves, loads and renders configs; it does not lint
// commit messages.
package commitlint

import (
	"fmt"
	"strings"
)

// Severity is the rule strictness level. The numeric values are the ones the
// external linter reads from the config file.
type Severity int

const (
	Off Severity = iota
	Warning
	Error
)

var severityNames = map[Severity]string{
	Off:     "off",
	Warning: "warning",
	Error:   "error",
}

func (s Severity) Valid() bool {
	_, ok := severityNames[s]
	return ok
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// ParseSeverity accepts either the level name or its numeric form.
func ParseSeverity(s string) (Severity, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for sev, name := range severityNames {
		if s == name || s == fmt.Sprint(int(sev)) {
			return sev, nil
		}
	}
	return Off, fmt.Errorf("%w: %q", ErrInvalidSeverity, s)
}

// Applicability is the "when" condition of a rule: whether the rule's
// assertion must hold ("always") or must not hold ("never").
type Applicability string

const (
	Always Applicability = "always"
	Never  Applicability = "never"
)

func (a Applicability) Valid() bool {
	return a == Always || a == Never
}
