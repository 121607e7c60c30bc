package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/lacycat/langcat/lang"
	"github.com/lacycat/langcat/log"
)

// Set stores a value addressed by a file key, creating the file and group
// as needed. An existing value at the key is replaced.
type Set struct {
	Key   string `arg:"" help:"Key of the form file.group.key; file is read from --dir." name:"key"`
	Value string `arg:"" help:"Value in LangCat syntax, e.g. 42, True, \"text\", [1, 2]." name:"value"`
}

// Run executes the set command.
func (s *Set) Run(ctx context.Context) error {
	opts := optionsFrom(ctx)

	file, dotted, err := lang.SplitFileKey(s.Key)
	if err != nil {
		return err
	}

	group, key, _ := strings.Cut(dotted, ".")

	if strings.TrimSpace(s.Value) == "" {
		return lang.ErrEmptyValue.With(slog.String("key", s.Key))
	}

	v, err := lang.Decode(s.Value, opts...)
	if err == nil {
		err = lang.CheckEntry(group, key, v)
	}

	if err != nil {
		return lang.WrapError(err).With(slog.String("key", s.Key))
	}

	path := lang.FilePath(file, opts...)

	doc, err := lang.LoadFile(ctx, path, opts...)
	if errors.Is(err, fs.ErrNotExist) {
		doc, err = lang.NewDocument(), nil
	}

	if err != nil {
		return err
	}

	doc.AddKey(group, key, v)

	if err := lang.SaveFile(ctx, doc, path, opts...); err != nil {
		return err
	}

	log.DebugContext(ctx, "value set",
		slog.String("path", path),
		slog.String("key", dotted),
		slog.String("kind", v.Kind().String()))

	return nil
}
