package commitlint

import "errors"

var (
	ErrInvalidSeverity      = errors.New("invalid severity")
	ErrInvalidApplicability = errors.New("invalid applicability")
	ErrUnknownRule          = errors.New("unknown rule")
	ErrEmptyRuleName        = errors.New("empty rule name")
	ErrUnknownPreset        = errors.New("unknown preset")
	ErrMalformedRule        = errors.New("malformed rule setting")
	ErrUnsupportedFormat    = errors.New("unsupported config format")
	ErrConfigNotFound       = errors.New("commitlint config not found")
)
