package lang

import (
	"log/slog"
	"strconv"
	"strings"
)

// Decode parses the textual form of a single value.
//
// The trimmed text is matched in order: a double-quoted string, the
// literals True and False, a bracketed list, a float (any text containing a
// '.'), and finally an integer. Malformed numbers fail with an error that
// matches [ErrValueSyntax].
func Decode(raw string, opts ...Option) (Value, error) {
	o := makeOptions(opts...)

	return o.decode(raw)
}

func (o options) decode(raw string) (Value, error) {
	text := strings.TrimSpace(raw)

	switch {
	case len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"':
		return String(text[1 : len(text)-1]), nil

	case text == "True":
		return Boolean(true), nil

	case text == "False":
		return Boolean(false), nil

	case strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"):
		return o.decodeList(text[1 : len(text)-1])

	case strings.Contains(text, "."):
		f, err := strconv.ParseFloat(text, 64)
		if err == nil && !isDecimal(text) {
			err = strconv.ErrSyntax
		}

		if err != nil {
			return nil, ErrInvalidFloat.Wrap(err).With(slog.String("value", text))
		}

		return Float(f), nil
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, ErrInvalidInt.Wrap(err).With(slog.String("value", text))
	}

	return Integer(i), nil
}

func (o options) decodeList(interior string) (Value, error) {
	if strings.TrimSpace(interior) == "" {
		return NewList(), nil
	}

	var pieces []string
	if o.nestedLists {
		pieces = splitNested(interior)
	} else {
		pieces = strings.Split(interior, ",")

		// Trailing empty pieces are dropped, so [1,] is [1]. Blank pieces
		// are kept and fail to decode.
		for len(pieces) > 0 && pieces[len(pieces)-1] == "" {
			pieces = pieces[:len(pieces)-1]
		}
	}

	items := make([]Value, len(pieces))

	for i, p := range pieces {
		v, err := o.decode(p)
		if err != nil {
			return nil, err
		}

		items[i] = v
	}

	return NewList(items...), nil
}

// splitNested splits s at commas that are outside brackets and quotes.
// Unbalanced input is split as far as it can be; the pieces are then
// rejected by decode.
func splitNested(s string) []string {
	var (
		pieces []string
		depth  int
		quoted bool
		start  int
	)

	for i := range len(s) {
		switch c := s[i]; {
		case c == '"':
			quoted = !quoted
		case quoted:
		case c == '[':
			depth++
		case c == ']':
			if depth > 0 {
				depth--
			}
		case c == ',' && depth == 0:
			pieces = append(pieces, s[start:i])
			start = i + 1
		}
	}

	return append(pieces, s[start:])
}

// isDecimal reports whether s is a plain decimal float: an optional sign,
// digits and one '.', optionally followed by an exponent. It excludes the
// hexadecimal, underscore, Inf and NaN forms strconv also accepts.
func isDecimal(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		exp := strings.TrimLeft(s[i+1:], "+-")
		if exp == "" || strings.Trim(exp, "0123456789") != "" {
			return false
		}

		s = s[:i]
	}

	return strings.Count(s, ".") == 1 && s != "." &&
		strings.Trim(s, "0123456789.") == ""
}
