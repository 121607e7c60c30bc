package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lacycat/langcat/lang"
)

type (
	contextKey struct{}
	optionsKey struct{}
	outputKey  struct{}
	inputKey   struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithOptions returns a new context.Context carrying options passed to every
// lang call made by a command.
func WithOptions(ctx context.Context, opts ...lang.Option) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

func optionsFrom(ctx context.Context) []lang.Option {
	opts, _ := ctx.Value(optionsKey{}).([]lang.Option)

	return opts
}

// WithOutput returns a new context.Context in which commands write their
// results to w instead of os.Stdout.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// WithInput returns a new context.Context in which the source "-" reads
// from r instead of os.Stdin.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// parseSource parses the document named by source, or stdin for "-".
func parseSource(ctx context.Context, source string) (*lang.Document, error) {
	opts := optionsFrom(ctx)

	if source == stdinSource {
		doc, err := lang.ParseReader(ctx, inputFrom(ctx), opts...)
		if err != nil {
			return nil, lang.WrapError(err).With(slog.String("source", "stdin"))
		}

		return doc, nil
	}

	return lang.LoadFile(ctx, source, opts...)
}
