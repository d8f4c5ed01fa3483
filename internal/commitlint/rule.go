package commitlint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"gopkg.in/yaml.v3"
)

// RuleSetting is one entry of the rules map. On the wire it is the tuple
// [level, applicability, value] where the last two elements are optional.
type RuleSetting struct {
	Level Severity
	When  Applicability
	Value any
}

// Rule builds a setting without a value.
func Rule(level Severity, when Applicability) RuleSetting {
	return RuleSetting{Level: level, When: when}
}

// RuleWithValue builds a setting carrying a rule option such as a length limit
// or an allowed-values list.
func RuleWithValue(level Severity, when Applicability, value any) RuleSetting {
	return RuleSetting{Level: level, When: when, Value: value}
}

func (r RuleSetting) String() string {
	if r.Value == nil {
		return fmt.Sprintf("[%d, %s]", int(r.Level), r.When)
	}
	return fmt.Sprintf("[%d, %s, %v]", int(r.Level), r.When, r.Value)
}

func (r RuleSetting) clone() RuleSetting {
	r.Value = cloneValue(r.Value)
	return r
}

func cloneRules(rules map[string]RuleSetting) map[string]RuleSetting {
	if rules == nil {
		return nil
	}
	out := make(map[string]RuleSetting, len(rules))
	for name, r := range rules {
		out[name] = r.clone()
	}
	return out
}

// cloneValue copies the list and map shapes a rule option can take.
func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	case []string:
		return slices.Clone(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

func (r RuleSetting) tuple() []any {
	out := []any{int(r.Level), string(r.When)}
	if r.Value != nil {
		out = append(out, r.Value)
	}
	return out
}

func (r RuleSetting) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.tuple())
}

func (r *RuleSetting) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRule, err)
	}
	if len(parts) == 0 || len(parts) > 3 {
		return fmt.Errorf("%w: expected 1 to 3 elements, got %d", ErrMalformedRule, len(parts))
	}

	if bytes.Equal(bytes.TrimSpace(parts[0]), []byte("null")) {
		return fmt.Errorf("%w: level must be a number, got null", ErrMalformedRule)
	}
	var level float64
	if err := json.Unmarshal(parts[0], &level); err != nil {
		return fmt.Errorf("%w: level must be a number", ErrMalformedRule)
	}
	if level != math.Trunc(level) {
		return fmt.Errorf("%w: level must be an integer, got %v", ErrMalformedRule, level)
	}

	out := RuleSetting{Level: Severity(level), When: Always}
	if len(parts) > 1 {
		var when string
		if err := json.Unmarshal(parts[1], &when); err != nil {
			return fmt.Errorf("%w: applicability must be a string", ErrMalformedRule)
		}
		out.When = Applicability(when)
	}
	if len(parts) > 2 {
		dec := json.NewDecoder(bytes.NewReader(parts[2]))
		dec.UseNumber()
		if err := dec.Decode(&out.Value); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedRule, err)
		}
		out.Value = normalizeJSON(out.Value)
	}

	*r = out
	return nil
}

func (r RuleSetting) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range r.tuple() {
		var item yaml.Node
		if err := item.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &item)
	}
	return node, nil
}

func (r *RuleSetting) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: expected a sequence", ErrMalformedRule, node.Line)
	}
	if len(node.Content) == 0 || len(node.Content) > 3 {
		return fmt.Errorf("%w: line %d: expected 1 to 3 elements, got %d", ErrMalformedRule, node.Line, len(node.Content))
	}

	if tag := node.Content[0].ShortTag(); tag != "!!int" {
		return fmt.Errorf("%w: line %d: level must be an integer, got %s", ErrMalformedRule, node.Line, tag)
	}
	var level int
	if err := node.Content[0].Decode(&level); err != nil {
		return fmt.Errorf("%w: line %d: level must be an integer", ErrMalformedRule, node.Line)
	}

	out := RuleSetting{Level: Severity(level), When: Always}
	if len(node.Content) > 1 {
		var when string
		if err := node.Content[1].Decode(&when); err != nil {
			return fmt.Errorf("%w: line %d: applicability must be a string", ErrMalformedRule, node.Line)
		}
		out.When = Applicability(when)
	}
	if len(node.Content) > 2 {
		if err := node.Content[2].Decode(&out.Value); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrMalformedRule, node.Line, err)
		}
	}

	*r = out
	return nil
}

// normalizeJSON turns json.Number into int when the number is integral so that
// values decoded from JSON compare equal to the ones decoded from YAML.
func normalizeJSON(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i)
		}
		f, _ := t.Float64()
		return f
	case []any:
		for i := range t {
			t[i] = normalizeJSON(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = normalizeJSON(t[k])
		}
		return t
	default:
		return v
	}
}
