package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lacycat/langcat/lang"
)

// suggestLimit is the maximum number of keys suggested for a missing key.
const suggestLimit = 3

// Get prints a single value addressed by a file key.
type Get struct {
	Raw bool `help:"Print string values without quotes." short:"r"`

	Key string `arg:"" help:"Key of the form file.group.key; file is read from --dir." name:"key"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) error {
	opts := optionsFrom(ctx)

	v, ok, err := lang.LoadValue(ctx, g.Key, opts...)
	if err != nil {
		return err
	}

	if !ok {
		return g.notFound(ctx)
	}

	out := v.Encode()
	if s, isString := v.(lang.String); isString && g.Raw {
		out = string(s)
	}

	_, err = fmt.Fprintln(outputFrom(ctx), out)

	return err
}

// notFound builds the error for a missing key, listing similar keys from the
// same document.
func (g *Get) notFound(ctx context.Context) error {
	opts := optionsFrom(ctx)
	e := lang.ErrKeyNotFound.With(slog.String("key", g.Key))

	file, dotted, err := lang.SplitFileKey(g.Key)
	if err != nil {
		return e
	}

	doc, err := lang.LoadFile(ctx, lang.FilePath(file, opts...), opts...)
	if err != nil {
		return e
	}

	if s := lang.Suggest(doc, dotted, suggestLimit); len(s) > 0 {
		for i := range s {
			s[i] = file + "." + s[i]
		}

		e = e.With(slog.String("suggest", strings.Join(s, ",")))
	}

	return e
}
