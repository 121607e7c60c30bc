package lang

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

const (
	groupOpen  = "$"
	groupClose = "$:"
	keyOpen    = "*"
	keyClose   = "* -> "
	keyIndent  = "    "
)

// ParseReader reads r to completion and parses the result.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadFile.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses a LangCat document.
//
// Lines are trimmed before matching. Lines that are neither a group header
// nor a key line inside a group are ignored. The first grammar or value
// error aborts the parse; the error carries the 1-based line number.
func ParseString(ctx context.Context, s string, opts ...Option) (*Document, error) {
	p := &parser{
		options: makeOptions(opts...),
		doc:     NewDocument(),
		seen:    make(map[string]map[string]struct{}),
	}

	for i, raw := range strings.Split(s, "\n") {
		p.line = i + 1

		if err := p.parseLine(ctx, strings.TrimSpace(raw)); err != nil {
			return nil, err
		}
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("lines", p.line),
		slog.Int("groups", p.doc.Len()))

	return p.doc, nil
}

// parser holds the parser state.
type parser struct {
	options

	doc   *Document
	group string
	keys  map[string]struct{} // keys seen in the current group; nil before the first header
	seen  map[string]map[string]struct{}
	line  int
}

func (p *parser) parseLine(ctx context.Context, line string) error {
	if name, ok := matchGroup(line); ok {
		return p.enterGroup(ctx, name)
	}

	if p.keys != nil {
		if key, rest, ok := matchKey(line); ok {
			return p.addKey(ctx, key, rest)
		}
	}

	if line != "" {
		p.logger.TraceContext(ctx, "line skipped", slog.Int("line", p.line))
	}

	return nil
}

func (p *parser) enterGroup(ctx context.Context, name string) error {
	switch _, dup := p.seen[name]; {
	case name == "":
		return ErrEmptyGroupName.With(slog.Int("line", p.line))
	case dup:
		return ErrDuplicateGroupName.With(
			slog.String("group", name),
			slog.Int("line", p.line))
	}

	p.group = name
	p.keys = make(map[string]struct{})
	p.seen[name] = p.keys

	p.logger.TraceContext(ctx, "group",
		slog.String("group", name),
		slog.Int("line", p.line))

	return nil
}

func (p *parser) addKey(ctx context.Context, key, rest string) error {
	switch _, dup := p.keys[key]; {
	case key == "":
		return ErrEmptyKeyName.With(
			slog.String("group", p.group),
			slog.Int("line", p.line))
	case dup:
		return ErrDuplicateKeyName.With(
			slog.String("group", p.group),
			slog.String("key", key),
			slog.Int("line", p.line))
	case rest == "":
		return ErrEmptyValue.With(
			slog.String("group", p.group),
			slog.String("key", key),
			slog.Int("line", p.line))
	}

	v, err := p.decode(rest)
	if err != nil {
		return WrapError(err).With(
			slog.String("group", p.group),
			slog.String("key", key),
			slog.Int("line", p.line))
	}

	p.keys[key] = struct{}{}
	p.doc.AddKey(p.group, key, v)

	p.logger.TraceContext(ctx, "key",
		slog.String("group", p.group),
		slog.String("key", key),
		slog.String("kind", v.Kind().String()),
		slog.Int("line", p.line))

	return nil
}

// matchGroup matches a whole line of the form $name$: and returns name.
func matchGroup(line string) (string, bool) {
	if len(line) < len(groupOpen)+len(groupClose) ||
		!strings.HasPrefix(line, groupOpen) ||
		!strings.HasSuffix(line, groupClose) {
		return "", false
	}

	return line[len(groupOpen) : len(line)-len(groupClose)], true
}

// matchKey matches a line of the form *key* -> rest. The key ends at the
// first "* -> " following the opening '*'.
func matchKey(line string) (key, rest string, ok bool) {
	if !strings.HasPrefix(line, keyOpen) {
		return "", "", false
	}

	body := line[len(keyOpen):]

	if i := strings.Index(body, keyClose); i >= 0 {
		return body[:i], strings.TrimSpace(body[i+len(keyClose):]), true
	}

	return "", "", false
}
