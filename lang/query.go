package lang

import (
	"context"
	"log/slog"

	"github.com/expr-lang/expr"
)

// Query evaluates an expr-lang expression against doc and returns the result
// as a [Value]. Each group is visible as a map-typed identifier, so
// settings.volume reads key volume of group settings. Groups whose names are
// not identifiers are reachable as $env["group-name"].
func Query(ctx context.Context, doc *Document, source string, opts ...Option) (Value, error) {
	o := makeOptions(opts...)
	env := doc.env()

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, ErrQuery.Wrap(err).With(slog.String("source", source))
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrQuery.Wrap(err).With(slog.String("source", source))
	}

	v, err := FromNative(out)
	if err != nil {
		return nil, ErrQuery.Wrap(err).With(slog.String("source", source))
	}

	o.logger.TraceContext(ctx, "query",
		slog.String("source", source),
		slog.String("kind", v.Kind().String()))

	return v, nil
}
