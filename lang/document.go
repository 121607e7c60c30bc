package lang

import (
	"iter"
	"log/slog"
	"strings"
)

// Document is a set of named groups of key-value pairs.
//
// Groups and keys iterate in the order they were first added. The zero
// Document is empty and ready to use. A Document is not safe for concurrent
// mutation.
type Document struct {
	groups []*Group
	index  map[string]*Group
}

// Group is a named collection of key-value pairs owned by a [Document].
type Group struct {
	name   string
	keys   []string
	values map[string]Value
}

// NewDocument returns an empty document.
func NewDocument() *Document { return new(Document) }

// AddKey stores v at group.key, creating the group if needed. An existing
// value is overwritten in place; its position is kept.
func (d *Document) AddKey(group, key string, v Value) {
	g, ok := d.index[group]
	if !ok {
		if d.index == nil {
			d.index = make(map[string]*Group)
		}

		g = &Group{name: group, values: make(map[string]Value)}
		d.index[group] = g
		d.groups = append(d.groups, g)
	}

	g.set(key, v)
}

// CheckEntry reports whether group.key = v renders to lines that parse back
// to the same entry. [Document.AddKey] does not check; callers storing
// untrusted names should.
func CheckEntry(group, key string, v Value) error {
	attrs := []slog.Attr{slog.String("group", group), slog.String("key", key)}

	switch {
	case group == "":
		return ErrEmptyGroupName.With(attrs...)
	case strings.Contains(group, "\n"):
		return ErrInvalidGroupName.With(attrs...)
	case key == "":
		return ErrEmptyKeyName.With(attrs...)
	case strings.Contains(key, "\n"), strings.Contains(key, keyClose):
		return ErrInvalidKeyName.With(attrs...)
	case v == nil:
		return ErrEmptyValue.With(attrs...)
	case strings.Contains(v.Encode(), "\n"):
		return ErrMultilineValue.With(attrs...)
	}

	return nil
}

// Lookup resolves a dotted key of the form "group.key". The key must contain
// exactly one '.', otherwise the error matches [ErrInvalidKeyFormat].
// A missing group or key is reported with ok == false and a nil error.
func (d *Document) Lookup(dotted string) (v Value, ok bool, err error) {
	parts := strings.Split(dotted, ".")
	if len(parts) != 2 {
		return nil, false, ErrInvalidKeyFormat.With(
			slog.String("key", dotted),
			slog.Int("segments", len(parts)),
		)
	}

	v, ok = d.Get(parts[0], parts[1])

	return v, ok, nil
}

// Get returns the value at group.key.
func (d *Document) Get(group, key string) (Value, bool) {
	g, ok := d.Group(group)
	if !ok {
		return nil, false
	}

	return g.Get(key)
}

// Group returns the named group.
func (d *Document) Group(name string) (*Group, bool) {
	if d == nil {
		return nil, false
	}

	g, ok := d.index[name]

	return g, ok
}

// Len returns the number of groups.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}

	return len(d.groups)
}

// All returns an iterator over the groups.
func (d *Document) All() iter.Seq2[string, *Group] {
	return func(yield func(string, *Group) bool) {
		if d == nil {
			return
		}

		for _, g := range d.groups {
			if !yield(g.name, g) {
				return
			}
		}
	}
}

// Keys returns an iterator over every dotted "group.key" in the document.
func (d *Document) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for name, g := range d.All() {
			for _, k := range g.keys {
				if !yield(name + "." + k) {
					return
				}
			}
		}
	}
}

// Equal reports whether d and other hold the same groups, keys and values,
// irrespective of order.
func (d *Document) Equal(other *Document) bool {
	if d.Len() != other.Len() {
		return false
	}

	for name, g := range d.All() {
		og, ok := other.Group(name)
		if !ok || og.Len() != g.Len() {
			return false
		}

		for k, v := range g.All() {
			ov, ok := og.Get(k)
			if !ok || !Equal(v, ov) {
				return false
			}
		}
	}

	return true
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Len returns the number of keys in the group.
func (g *Group) Len() int { return len(g.keys) }

// Get returns the value stored at key.
func (g *Group) Get(key string) (Value, bool) {
	v, ok := g.values[key]

	return v, ok
}

// All returns an iterator over the key-value pairs of the group.
func (g *Group) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range g.keys {
			if !yield(k, g.values[k]) {
				return
			}
		}
	}
}

func (g *Group) set(key string, v Value) {
	if _, ok := g.values[key]; !ok {
		g.keys = append(g.keys, key)
	}

	g.values[key] = v
}
