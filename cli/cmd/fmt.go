package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/lacycat/langcat/lang"
)

// Fmt parses a document and prints it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical LangCat syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
}

// Native formats input as canonical LangCat syntax.
type Native struct {
	Color bool `default:"true" help:"Colorize output when writing to a terminal." negatable:""`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the native fmt command.
func (f *Native) Run(ctx context.Context) error {
	doc, err := parseSource(ctx, f.Source)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "native"))
	}

	w := outputFrom(ctx)
	if !f.Color {
		return doc.Format(w)
	}

	return formatColor(doc, w)
}

// palette holds the styles of colorized native output.
type palette struct {
	group, key, arrow lipgloss.Style
	kind              map[lang.Kind]lipgloss.Style
}

// newPalette returns styles bound to a renderer for w, so color is dropped
// when w is not a terminal.
func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		group: r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		key:   r.NewStyle().Foreground(lipgloss.Color("4")),
		arrow: r.NewStyle().Foreground(lipgloss.Color("8")),
		kind: map[lang.Kind]lipgloss.Style{
			lang.KindString:  r.NewStyle().Foreground(lipgloss.Color("2")),
			lang.KindBoolean: r.NewStyle().Foreground(lipgloss.Color("5")),
			lang.KindInteger: r.NewStyle().Foreground(lipgloss.Color("3")),
			lang.KindFloat:   r.NewStyle().Foreground(lipgloss.Color("3")),
			lang.KindList:    r.NewStyle().Foreground(lipgloss.Color("15")),
		},
	}
}

func formatColor(doc *lang.Document, w io.Writer) error {
	p := newPalette(w)
	bw := bufio.NewWriter(w)

	for name, g := range doc.All() {
		if _, err := bw.WriteString(p.group.Render("$"+name+"$:") + "\n"); err != nil {
			return err
		}

		for k, v := range g.All() {
			line := "    " + p.key.Render("*"+k+"*") +
				p.arrow.Render(" -> ") +
				p.kind[v.Kind()].Render(v.Encode()) + "\n"

			if _, err := bw.WriteString(line); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// JSON formats input as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output; 0 is compact." short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) error {
	doc, err := parseSource(ctx, j.Source)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "json"))
	}

	if err := doc.FormatJSON(ctx, outputFrom(ctx), j.Indent); err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	return nil
}

// YAML formats input as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output; 0 is flow style." short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) error {
	doc, err := parseSource(ctx, y.Source)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "yaml"))
	}

	if err := doc.FormatYAML(ctx, outputFrom(ctx), y.Indent); err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	return nil
}
