package commitlint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Render writes cfg in the requested format. Rule keys come out sorted.
func Render(w io.Writer, cfg Config, format Format) error {
	switch format {
	case FormatJS:
		_, err := io.WriteString(w, renderJS(cfg))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func renderJS(cfg Config) string {
	var b strings.Builder
	b.WriteString("module.exports = {\n")

	if len(cfg.Extends) > 0 {
		items := make([]string, len(cfg.Extends))
		for i, name := range cfg.Extends {
			items[i] = jsString(name)
		}
		fmt.Fprintf(&b, "  extends: [%s],\n", strings.Join(items, ", "))
	}

	if len(cfg.Rules) == 0 {
		b.WriteString("  rules: {},\n")
	} else {
		b.WriteString("  rules: {\n")
		for _, name := range cfg.RuleNames() {
			fmt.Fprintf(&b, "    %s: %s,\n", jsString(name), jsLiteral(cfg.Rules[name].tuple()))
		}
		b.WriteString("  },\n")
	}

	b.WriteString("};\n")
	return b.String()
}

func jsString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + s + "'"
}

func jsLiteral(v any) string {
	switch t := v.(type) {
	case string:
		return jsString(t)
	case []any:
		items := make([]string, len(t))
		for i, item := range t {
			items[i] = jsLiteral(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case []string:
		items := make([]string, len(t))
		for i, item := range t {
			items[i] = jsString(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case nil:
		return "null"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
