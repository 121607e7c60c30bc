package lang

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// String renders the document in canonical LangCat syntax.
func (d *Document) String() string {
	var sb strings.Builder

	_, _ = d.WriteTo(&sb)

	return sb.String()
}

// Format writes the document in canonical LangCat syntax to the writer.
func (d *Document) Format(w io.Writer) error {
	_, err := d.WriteTo(w)

	return err
}

// WriteTo implements io.WriterTo. Each group is written as a $name$: header
// line followed by one indented *key* -> value line per key.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: bufio.NewWriter(w)}

	for name, g := range d.All() {
		cw.print(groupOpen, name, groupClose, "\n")

		for k, v := range g.All() {
			cw.print(keyIndent, keyOpen, k, keyClose, v.Encode(), "\n")
		}
	}

	if cw.err == nil {
		cw.err = cw.w.Flush()
	}

	return cw.n, cw.err
}

// FormatJSON writes the document as a JSON object of group objects. Groups
// and keys keep document order.
func (d *Document) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(d, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(d)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the document as a YAML mapping of group mappings.
// An indent of 0 selects flow style.
func (d *Document) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, d.mapSlice(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// countWriter remembers the first write error and skips writes after it.
type countWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (cw *countWriter) print(parts ...string) {
	for _, s := range parts {
		if cw.err != nil {
			return
		}

		n, err := cw.w.WriteString(s)
		cw.n += int64(n)
		cw.err = err
	}
}
