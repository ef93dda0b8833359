package palette

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Shade is one step of a ramp and its formatted colour.
type Shade struct {
	Step  Step
	Value string
}

// ShadePalette maps steps to colours. Steps are unique and kept in ascending order.
type ShadePalette []Shade

// NewShadePalette builds a ShadePalette from a step map.
func NewShadePalette(values map[Step]string) ShadePalette {
	p := make(ShadePalette, 0, len(values))
	for step, value := range values {
		p = append(p, Shade{Step: step, Value: value})
	}
	sort.Slice(p, func(i, j int) bool { return p[i].Step < p[j].Step })
	return p
}

// Get returns the colour stored for step.
func (p ShadePalette) Get(step Step) (string, bool) {
	i := sort.Search(len(p), func(i int) bool { return p[i].Step >= step })
	if i < len(p) && p[i].Step == step {
		return p[i].Value, true
	}
	return "", false
}

// Set returns a palette with step assigned to value, replacing any previous value.
func (p ShadePalette) Set(step Step, value string) ShadePalette {
	i := sort.Search(len(p), func(i int) bool { return p[i].Step >= step })
	if i < len(p) && p[i].Step == step {
		out := append(ShadePalette(nil), p...)
		out[i].Value = value
		return out
	}

	out := make(ShadePalette, 0, len(p)+1)
	out = append(out, p[:i]...)
	out = append(out, Shade{Step: step, Value: value})
	return append(out, p[i:]...)
}

// Steps lists the palette's steps in ascending order.
func (p ShadePalette) Steps() []Step {
	steps := make([]Step, len(p))
	for i, shade := range p {
		steps[i] = shade.Step
	}
	return steps
}

// MarshalJSON encodes the palette as an object keyed by step, in step order.
func (p ShadePalette) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, shade := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		value, err := json.Marshal(shade.Value)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%q:", strconv.Itoa(int(shade.Step)))
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by integer steps.
func (p *ShadePalette) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	values := make(map[Step]string, len(raw))
	for key, value := range raw {
		step, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("shade step %q is not an integer", key)
		}
		values[Step(step)] = value
	}
	*p = NewShadePalette(values)
	return nil
}

// MarshalYAML encodes the palette as a mapping keyed by step, in step order.
func (p ShadePalette) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, shade := range p {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(int(shade.Step))},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: shade.Value},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping keyed by integer steps.
func (p *ShadePalette) UnmarshalYAML(value *yaml.Node) error {
	var raw map[int]string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	values := make(map[Step]string, len(raw))
	for step, v := range raw {
		values[Step(step)] = v
	}
	*p = NewShadePalette(values)
	return nil
}

// Value is a palette entry: either a single colour or a ShadePalette.
type Value struct {
	single   string
	shades   ShadePalette
	isShades bool
}

// SingleValue wraps a colour string that is passed through as-is.
func SingleValue(v string) Value {
	return Value{single: v}
}

// ShadesValue wraps a generated or hand-written ramp.
func ShadesValue(p ShadePalette) Value {
	return Value{shades: p, isShades: true}
}

// Single returns the colour of a single-value entry.
func (v Value) Single() (string, bool) {
	return v.single, !v.isShades
}

// Shades returns the ramp of a shades entry.
func (v Value) Shades() (ShadePalette, bool) {
	return v.shades, v.isShades
}

// Len is the number of colours the entry holds; a single value counts as one.
func (v Value) Len() int {
	if v.isShades {
		return len(v.shades)
	}
	return 1
}

// Entry is a named palette value.
type Entry struct {
	Name  string
	Value Value
}

// NamedPalette maps palette names to values, keeping insertion order.
// Reassigning a name replaces its value in place. The zero value is empty and
// ready to use.
type NamedPalette struct {
	entries []Entry
	index   map[string]int
}

// Set assigns value to name and reports whether an earlier value was replaced.
func (p *NamedPalette) Set(name string, value Value) bool {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if i, ok := p.index[name]; ok {
		p.entries[i].Value = value
		return true
	}
	p.index[name] = len(p.entries)
	p.entries = append(p.entries, Entry{Name: name, Value: value})
	return false
}

// Get returns the value stored under name.
func (p NamedPalette) Get(name string) (Value, bool) {
	i, ok := p.index[name]
	if !ok {
		return Value{}, false
	}
	return p.entries[i].Value, true
}

// Names lists palette names in insertion order.
func (p NamedPalette) Names() []string {
	names := make([]string, len(p.entries))
	for i, entry := range p.entries {
		names[i] = entry.Name
	}
	return names
}

// Entries returns a copy of the entries in insertion order.
func (p NamedPalette) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

// Len is the number of named entries.
func (p NamedPalette) Len() int {
	return len(p.entries)
}

// StepCount is the total number of colours across all entries.
func (p NamedPalette) StepCount() int {
	total := 0
	for _, entry := range p.entries {
		total += entry.Value.Len()
	}
	return total
}

// Clone returns an independent copy of p.
func (p NamedPalette) Clone() NamedPalette {
	var out NamedPalette
	for _, entry := range p.entries {
		out.Set(entry.Name, entry.Value)
	}
	return out
}

// Merge assigns every entry of other over p. onOverwrite, when non-nil, is
// called with each name whose earlier value was replaced.
func (p *NamedPalette) Merge(other NamedPalette, onOverwrite func(name string)) {
	for _, entry := range other.entries {
		if p.Set(entry.Name, entry.Value) && onOverwrite != nil {
			onOverwrite(entry.Name)
		}
	}
}

// MarshalJSON encodes the palette as an object in insertion order. Single
// values encode as strings, ramps as objects keyed by step.
func (p NamedPalette) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range p.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		var value []byte
		if shades, ok := entry.Value.Shades(); ok {
			value, err = shades.MarshalJSON()
		} else {
			value, err = json.Marshal(entry.Value.single)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of strings and step objects, keeping key order.
func (p *NamedPalette) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("palette must be a JSON object")
	}

	var out NamedPalette
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '"' {
			var single string
			if err := json.Unmarshal(raw, &single); err != nil {
				return err
			}
			out.Set(name, SingleValue(single))
			continue
		}

		var shades ShadePalette
		if err := shades.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("palette %q: %w", name, err)
		}
		out.Set(name, ShadesValue(shades))
	}

	*p = out
	return nil
}

// MarshalYAML encodes the palette as a mapping in insertion order.
func (p NamedPalette) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range p.entries {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Name}
		if shades, ok := entry.Value.Shades(); ok {
			value, _ := shades.MarshalYAML()
			node.Content = append(node.Content, key, value.(*yaml.Node))
			continue
		}
		node.Content = append(node.Content, key, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Value.single})
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping of strings and step mappings, keeping key order.
func (p *NamedPalette) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: palette must be a mapping", value.Line)
	}

	var out NamedPalette
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]

		switch valueNode.Kind {
		case yaml.ScalarNode:
			out.Set(keyNode.Value, SingleValue(valueNode.Value))
		case yaml.MappingNode:
			var shades ShadePalette
			if err := shades.UnmarshalYAML(valueNode); err != nil {
				return fmt.Errorf("line %d: palette %q: %w", valueNode.Line, keyNode.Value, err)
			}
			out.Set(keyNode.Value, ShadesValue(shades))
		default:
			return fmt.Errorf("line %d: palette %q must be a color or a step mapping", valueNode.Line, keyNode.Value)
		}
	}

	*p = out
	return nil
}
