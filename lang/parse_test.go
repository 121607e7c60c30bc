package lang

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"

	"github.com/lacycat/langcat/log"
)

const scenario = `$settings$:
    *volume* -> 75
    *fullscreen* -> True
$tags$:
    *names* -> ["a", "b"]
`

func TestParseString_Scenario(t *testing.T) {
	doc, err := ParseString(context.Background(), scenario)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	want := map[string]map[string]any{
		"settings": {"volume": int64(75), "fullscreen": true},
		"tags":     {"names": []any{"a", "b"}},
	}

	if diff := cmp.Diff(want, doc.ToMap()); diff != "" {
		t.Errorf("ToMap() mismatch (-want +got):\n%s", diff)
	}

	if got := doc.String(); got != scenario {
		t.Errorf("render mismatch:\ngot:\n%s\nwant:\n%s", got, scenario)
	}
}

func TestParseString_Empty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   "} {
		doc, err := ParseString(context.Background(), input)
		if err != nil {
			t.Fatalf("ParseString(%q) error: %v", input, err)
		}

		if doc.Len() != 0 {
			t.Errorf("ParseString(%q) has %d groups, want 0", input, doc.Len())
		}
	}
}

func TestParseString_Tolerated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]map[string]any
	}{
		{
			name:  "key before any group",
			input: "*orphan* -> 1\n$g$:\n*k* -> 2",
			want:  map[string]map[string]any{"g": {"k": int64(2)}},
		},
		{
			name:  "noise lines",
			input: "hello\n$g$:\n# not a comment\n*k* -> 2\n-> 3",
			want:  map[string]map[string]any{"g": {"k": int64(2)}},
		},
		{
			name:  "indentation is optional",
			input: "\t$g$:   \n*k* -> 2\n\t\t*j* ->    \"v\"",
			want:  map[string]map[string]any{"g": {"k": int64(2), "j": "v"}},
		},
		{
			name:  "crlf line endings",
			input: "$g$:\r\n    *k* -> 2.5\r\n",
			want:  map[string]map[string]any{"g": {"k": 2.5}},
		},
		{
			name:  "key ends at first separator",
			input: "$g$:\n*a* -> \"*b* -> 1\"",
			want:  map[string]map[string]any{"g": {"a": "*b* -> 1"}},
		},
		{
			name:  "separator without value is skipped",
			input: "$g$:\n*k* ->\n  *m* ->   \n*j* -> 1",
			want:  map[string]map[string]any{"g": {"j": int64(1)}},
		},
		{
			name:  "group with no keys is not materialized",
			input: "$empty$:\n$g$:\n*k* -> 1",
			want:  map[string]map[string]any{"g": {"k": int64(1)}},
		},
		{
			name:  "same key in different groups",
			input: "$a$:\n*k* -> 1\n$b$:\n*k* -> 2",
			want:  map[string]map[string]any{"a": {"k": int64(1)}, "b": {"k": int64(2)}},
		},
		{
			name:  "dollar inside group name",
			input: "$a$b$:\n*k* -> 1",
			want:  map[string]map[string]any{"a$b": {"k": int64(1)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if diff := cmp.Diff(tt.want, doc.ToMap()); diff != "" {
				t.Errorf("ToMap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseString_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		line  int64
	}{
		{"empty group name", "$$:", ErrEmptyGroupName, 1},
		{"duplicate group", "$g$:\n*a* -> 1\n$g$:", ErrDuplicateGroupName, 3},
		{"duplicate empty group", "$g$:\n$g$:", ErrDuplicateGroupName, 2},
		{"empty key name", "$g$:\n** -> 1", ErrEmptyKeyName, 2},
		{"duplicate key", "$g$:\n*k* -> 1\n*k* -> 2", ErrDuplicateKeyName, 3},
		{"duplicate key across kinds", "$g$:\n*k* -> 1\n*k* -> \"1\"", ErrDuplicateKeyName, 3},
		{"bad integer", "$g$:\n\n*k* -> 12a", ErrInvalidInt, 3},
		{"bad float", "$g$:\n*k* -> 1.2.3", ErrInvalidFloat, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(context.Background(), tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}

			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("expected *Error, got %T", err)
			}

			if v, ok := e.Attr("line"); !ok || v.Int64() != tt.line {
				t.Errorf("line attr = %v (present=%v), want %d", v, ok, tt.line)
			}
		})
	}
}

func TestParseString_ErrorCategories(t *testing.T) {
	_, err := ParseString(context.Background(), "$g$:\n*k* -> 1\n*k* -> 2")
	if !errors.Is(err, ErrFormatSyntax) {
		t.Errorf("duplicate key is not a format syntax error: %v", err)
	}

	if errors.Is(err, ErrValueSyntax) {
		t.Errorf("duplicate key is a value syntax error: %v", err)
	}

	_, err = ParseString(context.Background(), "$g$:\n*k* -> nope")
	if !errors.Is(err, ErrValueSyntax) || errors.Is(err, ErrFormatSyntax) {
		t.Errorf("bad value has wrong category: %v", err)
	}

	var e *Error
	if errors.As(err, &e) {
		if v, _ := e.Attr("key"); v.String() != "k" {
			t.Errorf("key attr = %v", v)
		}
		if v, _ := e.Attr("group"); v.String() != "g" {
			t.Errorf("group attr = %v", v)
		}
	}
}

func TestParseString_NestedListsOption(t *testing.T) {
	input := "$g$:\n*k* -> [[1, 2], \"a, b\"]"

	if _, err := ParseString(context.Background(), input); !errors.Is(err, ErrValueSyntax) {
		t.Errorf("default splitter accepted nested list: %v", err)
	}

	doc, err := ParseString(context.Background(), input, WithNestedLists(true))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	v, _ := doc.Get("g", "k")
	want := NewList(NewList(Integer(1), Integer(2)), String("a, b"))

	if !Equal(v, want) {
		t.Errorf("k = %s, want %s", v.Encode(), want.Encode())
	}
}

func TestParseString_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.Make(&buf, log.WithLevel(log.LevelTrace), log.WithFormat(log.FormatJSON))

	_, err := ParseString(context.Background(), "junk\n"+scenario, WithLogger(logger))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{`"msg":"line skipped"`, `"msg":"parse complete"`, `"groups":2`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected log output to contain %s, got:\n%s", want, output)
		}
	}
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(context.Background(), strings.NewReader(scenario))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if v, ok, _ := doc.Lookup("settings.volume"); !ok || !Equal(v, Integer(75)) {
		t.Errorf("settings.volume = %v", v)
	}

	_, err = ParseReader(context.Background(), iotest.ErrReader(errors.New("boom")))
	if !errors.Is(err, ErrReadFile) {
		t.Errorf("reader failure = %v, want %v", err, ErrReadFile)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		scenario,
		"$a$:\n*f* -> 1.0\n*l* -> []\n*s* -> \"\"\n$b$:\n*n* -> -3",
		"$only$:\n    *mixed* -> [\"x\", 2, 3.5, False]",
	}

	for _, input := range inputs {
		d, err := ParseString(context.Background(), input)
		if err != nil {
			t.Fatalf("parse error: %v", err)
		}

		rendered := d.String()

		again, err := ParseString(context.Background(), rendered)
		if err != nil {
			t.Fatalf("reparse error: %v\n%s", err, rendered)
		}

		if !again.Equal(d) {
			t.Errorf("parse(render(d)) != d\n%s", rendered)
		}

		if got := again.String(); got != rendered {
			t.Errorf("render is not idempotent:\nfirst:\n%s\nsecond:\n%s", rendered, got)
		}
	}
}
