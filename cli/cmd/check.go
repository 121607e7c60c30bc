package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lacycat/langcat/log"
)

// Check validates documents and prints a one-line summary for each.
type Check struct {
	Quiet bool `help:"Print nothing on success." short:"q"`

	Sources []string `arg:"" help:"Source input files or '-' for stdin." name:"source"`
}

// Run executes the check command. It stops at the first invalid document.
func (c *Check) Run(ctx context.Context) error {
	w := outputFrom(ctx)

	for _, source := range c.Sources {
		doc, err := parseSource(ctx, source)
		if err != nil {
			return ErrCheck.Wrap(err).With(slog.String("source", source))
		}

		keys := 0
		for _, g := range doc.All() {
			keys += g.Len()
		}

		log.DebugContext(ctx, "document valid",
			slog.String("source", source),
			slog.Int("groups", doc.Len()),
			slog.Int("keys", keys))

		if c.Quiet {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s: ok (%d groups, %d keys)\n", source, doc.Len(), keys); err != nil {
			return err
		}
	}

	return nil
}
