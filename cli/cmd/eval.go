package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lacycat/langcat/lang"
)

// Eval evaluates an expression against a document and prints the result in
// LangCat syntax.
type Eval struct {
	Expr   string `arg:"" help:"Expression; groups are identifiers, e.g. settings.volume * 2." name:"expr"`
	Source string `arg:"" help:"Source input file or '-' for stdin."                           name:"source" default:"-"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	doc, err := parseSource(ctx, e.Source)
	if err != nil {
		return lang.WrapError(err).With(slog.String("command", "eval"))
	}

	v, err := lang.Query(ctx, doc, e.Expr, optionsFrom(ctx)...)
	if err != nil {
		return lang.WrapError(err).With(slog.String("command", "eval"))
	}

	_, err = fmt.Fprintln(outputFrom(ctx), v.Encode())

	return err
}
