package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lacycat/langcat/lang"
	"github.com/lacycat/langcat/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag defaults from
// the group called name in a LangCat document.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx, "config"), "/path/to/config.lact")
//
// Each key of the group names a flag, with either hyphens or underscores
// separating words. Values are converted as follows:
//   - Integer and Float become their decimal text
//   - Boolean stays a bool
//   - String is used unquoted
//   - List becomes its elements joined by commas, for slice flags
//
// Example config file:
//
//	$config$:
//	    *log_level* -> "debug"
//	    *log_format* -> "text"
//	    *log_pretty* -> False
//
// A document that fails to parse, or has no such group, yields no defaults.
// Command-line flags override config file values.
func resolve(ctx context.Context, name string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		doc, err := lang.ParseReader(ctx, r, lang.WithLogger(log.Default()))
		if err != nil {
			log.WarnContext(ctx, "config ignored", slog.Any("error", err))

			return config{}, nil
		}

		group, ok := doc.Group(name)
		if !ok {
			return config{}, nil
		}

		cfg := make(config, group.Len())
		for key, value := range group.All() {
			cfg[key] = flagText(value)
		}

		return cfg, nil
	}
}

// config implements [kong.Resolver] for one LangCat group.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found, let kong use the default.
	return nil, nil
}

// flagText converts v to a value kong can decode into a flag. Kong requires
// numbers as strings.
func flagText(v lang.Value) any {
	switch v := v.(type) {
	case lang.Boolean:
		return bool(v)
	case lang.String:
		return string(v)
	case lang.Integer:
		return strconv.FormatInt(int64(v), 10)
	case lang.Float:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	case lang.List:
		elems := make([]string, 0, v.Len())
		for _, e := range v.All() {
			elems = append(elems, fmt.Sprint(flagText(e)))
		}

		return strings.Join(elems, ",")
	}

	return nil
}
