package lang

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// MarshalJSON implements json.Marshaler for Document. Unlike encoding a
// [Document.ToMap] result, groups and keys keep document order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	i := 0
	for name, g := range d.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		if err := writeJSONKey(&buf, name); err != nil {
			return nil, err
		}

		buf.WriteByte('{')

		j := 0
		for k, v := range g.All() {
			if j > 0 {
				buf.WriteByte(',')
			}
			j++

			if err := writeJSONKey(&buf, k); err != nil {
				return nil, err
			}

			b, err := json.Marshal(v.Native())
			if err != nil {
				return nil, err
			}

			buf.Write(b)
		}

		buf.WriteByte('}')
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func writeJSONKey(buf *bytes.Buffer, key string) error {
	b, err := json.Marshal(key)
	if err != nil {
		return err
	}

	buf.Write(b)
	buf.WriteByte(':')

	return nil
}

// ToMap converts the document to native Go maps keyed by group then key.
// Values are converted with [Value.Native].
func (d *Document) ToMap() map[string]map[string]any {
	result := make(map[string]map[string]any, d.Len())

	for name, g := range d.All() {
		m := make(map[string]any, g.Len())
		for k, v := range g.All() {
			m[k] = v.Native()
		}

		result[name] = m
	}

	return result
}

// env returns the document as an expression environment.
func (d *Document) env() map[string]any {
	result := make(map[string]any, d.Len())

	for name, g := range d.ToMap() {
		result[name] = g
	}

	return result
}

func (d *Document) mapSlice() yaml.MapSlice {
	result := make(yaml.MapSlice, 0, d.Len())

	for name, g := range d.All() {
		items := make(yaml.MapSlice, 0, g.Len())
		for k, v := range g.All() {
			items = append(items, yaml.MapItem{Key: k, Value: v.Native()})
		}

		result = append(result, yaml.MapItem{Key: name, Value: items})
	}

	return result
}
