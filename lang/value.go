package lang

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindString Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a typed LangCat datum. It is implemented only by [String],
// [Boolean], [Integer], [Float] and [List]; values are immutable.
type Value interface {
	// Kind reports the variant.
	Kind() Kind
	// Encode renders the value in canonical LangCat syntax.
	Encode() string
	// Native returns the value as string, bool, int64, float64 or []any.
	Native() any

	sealed()
}

type (
	// String is a text value. It is encoded between double quotes with no
	// escaping, so it cannot contain a double quote and still round-trip.
	String string
	// Boolean encodes as True or False.
	Boolean bool
	// Integer is a signed 64-bit integer.
	Integer int64
	// Float is a 64-bit floating point number. Its encoding always contains
	// a decimal point.
	Float float64
)

func (String) Kind() Kind  { return KindString }
func (Boolean) Kind() Kind { return KindBoolean }
func (Integer) Kind() Kind { return KindInteger }
func (Float) Kind() Kind   { return KindFloat }

func (s String) Encode() string { return `"` + string(s) + `"` }

func (b Boolean) Encode() string {
	if b {
		return "True"
	}

	return "False"
}

func (i Integer) Encode() string { return strconv.FormatInt(int64(i), 10) }

func (f Float) Encode() string {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func (s String) Native() any  { return string(s) }
func (b Boolean) Native() any { return bool(b) }
func (i Integer) Native() any { return int64(i) }
func (f Float) Native() any   { return float64(f) }

func (String) sealed()  {}
func (Boolean) sealed() {}
func (Integer) sealed() {}
func (Float) sealed()   {}

// List is an ordered, possibly heterogeneous sequence of values.
// The zero List is empty.
type List struct {
	items []Value
}

// NewList returns a List holding a copy of items. Nil items are dropped.
func NewList(items ...Value) List {
	l := List{items: make([]Value, 0, len(items))}

	for _, v := range items {
		if v != nil {
			l.items = append(l.items, v)
		}
	}

	return l
}

func (List) Kind() Kind { return KindList }

func (List) sealed() {}

// Len returns the number of elements.
func (l List) Len() int { return len(l.items) }

// At returns the i-th element. It panics if i is out of range.
func (l List) At(i int) Value { return l.items[i] }

// All returns an iterator over index/element pairs.
func (l List) All() iter.Seq2[int, Value] { return slices.All(l.items) }

// Values returns a copy of the elements.
func (l List) Values() []Value { return slices.Clone(l.items) }

func (l List) Encode() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, v := range l.items {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(v.Encode())
	}

	sb.WriteByte(']')

	return sb.String()
}

func (l List) Native() any {
	out := make([]any, len(l.items))
	for i, v := range l.items {
		out[i] = v.Native()
	}

	return out
}

// Equal reports whether a and b hold the same variant and content.
// Float comparison is by value, so NaN is never equal to itself.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Kind() != b.Kind() {
		return false
	}

	la, ok := a.(List)
	if !ok {
		return a == b
	}

	lb := b.(List)
	if la.Len() != lb.Len() {
		return false
	}

	for i, v := range la.items {
		if !Equal(v, lb.items[i]) {
			return false
		}
	}

	return true
}

// FromNative converts a Go value into a [Value]. It accepts the types
// returned by [Value.Native] as well as the other Go integer and float
// kinds, []Value and Value itself.
func FromNative(v any) (Value, error) {
	switch n := v.(type) {
	case Value:
		return n, nil
	case string:
		return String(n), nil
	case bool:
		return Boolean(n), nil
	case int:
		return Integer(n), nil
	case int8:
		return Integer(n), nil
	case int16:
		return Integer(n), nil
	case int32:
		return Integer(n), nil
	case int64:
		return Integer(n), nil
	case uint:
		return fromUnsigned(uint64(n), v)
	case uint8:
		return Integer(n), nil
	case uint16:
		return Integer(n), nil
	case uint32:
		return Integer(n), nil
	case uint64:
		return fromUnsigned(n, v)
	case float32:
		return Float(n), nil
	case float64:
		return Float(n), nil
	case []Value:
		return NewList(n...), nil
	case []any:
		items := make([]Value, len(n))

		for i, e := range n {
			item, err := FromNative(e)
			if err != nil {
				return nil, err
			}

			items[i] = item
		}

		return NewList(items...), nil
	default:
		return nil, ErrInvalidNative.With(slog.String("type", fmt.Sprintf("%T", v)))
	}
}

func fromUnsigned(u uint64, orig any) (Value, error) {
	if u > math.MaxInt64 {
		return nil, ErrInvalidNative.With(
			slog.String("type", fmt.Sprintf("%T", orig)),
			slog.String("value", strconv.FormatUint(u, 10)),
		)
	}

	return Integer(int64(u)), nil
}
