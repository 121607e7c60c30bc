package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func mustParse(t *testing.T, input string, opts ...Option) *Document {
	t.Helper()

	doc, err := ParseString(context.Background(), input, opts...)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return doc
}

func TestDocument_Format(t *testing.T) {
	doc := NewDocument()
	doc.AddKey("g", "s", String("v"))
	doc.AddKey("g", "f", Float(3))
	doc.AddKey("h", "l", NewList(Integer(1), NewList(Boolean(false))))

	want := "$g$:\n" +
		"    *s* -> \"v\"\n" +
		"    *f* -> 3.0\n" +
		"$h$:\n" +
		"    *l* -> [1, [False]]\n"

	var buf bytes.Buffer
	if err := doc.Format(&buf); err != nil {
		t.Fatalf("Format error: %v", err)
	}

	if buf.String() != want {
		t.Errorf("Format() =\n%s\nwant:\n%s", buf.String(), want)
	}

	n, err := doc.WriteTo(&bytes.Buffer{})
	if err != nil || n != int64(len(want)) {
		t.Errorf("WriteTo() = (%d, %v), want (%d, nil)", n, err, len(want))
	}
}

func TestDocument_Format_WriterError(t *testing.T) {
	doc := mustParse(t, scenario)
	boom := errors.New("boom")

	err := doc.Format(writerFunc(func([]byte) (int, error) { return 0, boom }))
	if !errors.Is(err, boom) {
		t.Errorf("Format() error = %v, want %v", err, boom)
	}
}

func TestDocument_FormatJSON(t *testing.T) {
	doc := mustParse(t, scenario)

	tests := []struct {
		name   string
		indent int
		want   string
	}{
		{
			name:   "compact",
			indent: 0,
			want:   `{"settings":{"volume":75,"fullscreen":true},"tags":{"names":["a","b"]}}` + "\n",
		},
		{
			name:   "indented",
			indent: 2,
			want: `{
  "settings": {
    "volume": 75,
    "fullscreen": true
  },
  "tags": {
    "names": [
      "a",
      "b"
    ]
  }
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := doc.FormatJSON(context.Background(), &buf, tt.indent); err != nil {
				t.Fatalf("FormatJSON error: %v", err)
			}

			if buf.String() != tt.want {
				t.Errorf("FormatJSON() =\n%s\nwant:\n%s", buf.String(), tt.want)
			}
		})
	}
}

func TestDocument_MarshalJSON_Escapes(t *testing.T) {
	doc := NewDocument()
	doc.AddKey(`a"b`, "k<", String("x"))
	doc.AddKey("empty", "list", NewList())

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var got map[string]map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, data)
	}

	if got[`a"b`]["k<"] != "x" {
		t.Errorf("escaped keys lost: %s", data)
	}

	if l, ok := got["empty"]["list"].([]any); !ok || len(l) != 0 {
		t.Errorf("empty list = %#v, want []", got["empty"]["list"])
	}
}

func TestDocument_MarshalJSON_NaN(t *testing.T) {
	doc := NewDocument()
	doc.AddKey("g", "k", Float(math.NaN()))

	if _, err := json.Marshal(doc); err == nil {
		t.Error("expected error marshaling NaN")
	}
}

func TestDocument_FormatYAML(t *testing.T) {
	doc := mustParse(t, scenario)

	var buf bytes.Buffer
	if err := doc.FormatYAML(context.Background(), &buf, 2); err != nil {
		t.Fatalf("FormatYAML error: %v", err)
	}

	output := buf.String()

	order := []string{"settings:", "volume: 75", "fullscreen: true", "tags:", "names:", "a", "b"}

	pos := 0
	for _, want := range order {
		i := strings.Index(output[pos:], want)
		if i < 0 {
			t.Fatalf("expected %q after offset %d in:\n%s", want, pos, output)
		}

		pos += i + len(want)
	}

	if !strings.HasPrefix(output, "settings:\n  volume: 75\n") {
		t.Errorf("unexpected block layout:\n%s", output)
	}
}

func TestDocument_FormatYAML_Flow(t *testing.T) {
	doc := mustParse(t, scenario)

	var buf bytes.Buffer
	if err := doc.FormatYAML(context.Background(), &buf, 0); err != nil {
		t.Fatalf("FormatYAML error: %v", err)
	}

	output := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(output, "{") || !strings.HasSuffix(output, "}") {
		t.Errorf("expected flow mapping, got %q", output)
	}

	if strings.Index(output, "settings") > strings.Index(output, "tags") {
		t.Errorf("group order not preserved: %q", output)
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
