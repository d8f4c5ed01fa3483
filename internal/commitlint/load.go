package commitlint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Format identifies a config file encoding.
type Format string

const (
	FormatJSON        Format = "json"
	FormatYAML        Format = "yaml"
	FormatJS          Format = "js"
	FormatPackageJSON Format = "package.json"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "js", "javascript":
		return FormatJS, nil
	case "package.json":
		return FormatPackageJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// searchOrder lists the file names Discover looks for, in priority order.
var searchOrder = []string{
	"package.json",
	".commitlintrc",
	".commitlintrc.json",
	".commitlintrc.yaml",
	".commitlintrc.yml",
	".commitlintrc.js",
	".commitlintrc.cjs",
	"commitlint.config.js",
	"commitlint.config.cjs",
}

// FormatForPath infers the encoding from a config file name.
func FormatForPath(path string) (Format, error) {
	base := filepath.Base(path)
	if base == "package.json" {
		return FormatPackageJSON, nil
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".js", ".cjs":
		return FormatJS, nil
	case ".mjs", ".ts", ".cts", ".mts":
		return "", fmt.Errorf("%w: %s must be evaluated by node", ErrUnsupportedFormat, base)
	case "":
		if base == ".commitlintrc" {
			// Extensionless rc files may hold JSON or YAML; YAML reads both.
			return FormatYAML, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, base)
}

// Load reads and decodes the config at path.
func Load(path string) (Config, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (Config, error) {
	var cfg Config
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	case FormatPackageJSON:
		if !gjson.ValidBytes(data) {
			return Config{}, errors.New("package.json is not valid JSON")
		}
		section := gjson.GetBytes(data, "commitlint")
		if !section.Exists() {
			return Config{}, fmt.Errorf("%w: package.json has no commitlint key", ErrConfigNotFound)
		}
		if err := json.Unmarshal([]byte(section.Raw), &cfg); err != nil {
			return Config{}, err
		}
	case FormatJS:
		return parseRenderedJS(data)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return cfg, nil
}

// parseRenderedJS recognises a JavaScript config only when, comments aside,
// it is exactly what Render produces for one of the shipped variants. Any
// other script has to be evaluated by node.
func parseRenderedJS(data []byte) (Config, error) {
	got := stripJSComments(string(data))
	for _, cfg := range []Config{Default(), StrictScope()} {
		if got == stripJSComments(renderJS(cfg)) {
			return cfg, nil
		}
	}
	return Config{}, fmt.Errorf("%w: JavaScript config differs from the rendered default and strict-scope variants and must be evaluated by node", ErrUnsupportedFormat)
}

// stripJSComments drops // comments outside string literals, trailing
// whitespace and blank lines.
func stripJSComments(src string) string {
	var out []string
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimRight(cutLineComment(line), " \t\r")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func cutLineComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case quote != 0 && ch == '\\':
			i++
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"' || ch == '`':
			quote = ch
		case ch == '/' && i+1 < len(line) && line[i+1] == '/':
			return line[:i]
		}
	}
	return line
}

// Discover returns the first loadable config file found in dir.
func Discover(dir string) (string, error) {
	for _, name := range searchOrder {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		if name == "package.json" && !gjson.GetBytes(data, "commitlint").Exists() {
			continue
		}
		return path, nil
	}
	return "", fmt.Errorf("%w in %s", ErrConfigNotFound, dir)
}
