package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lacycat/langcat/lang"
	"github.com/lacycat/langcat/log"
	"github.com/lacycat/langcat/profile"
)

// Init generates a configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	if _, err := os.Stat(confPath); err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath), slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	doc := i.buildDocument(ktx)

	if err := lang.SaveFile(ctx, doc, confPath, optionsFrom(ctx)...); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath))

	return nil
}

// DirFlag is the name of the flag selecting the directory of file keys.
// Kong expands it to an absolute path, so it is never written to the
// configuration file.
const DirFlag = "dir"

// buildDocument constructs the config group from current top-level flag
// values. Help, profiling and directory flags are omitted.
func (i *Init) buildDocument(ktx *kong.Context) *lang.Document {
	doc := lang.NewDocument()

	prefixIgnore := []string{"help", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || flag.Name == DirFlag ||
			slices.ContainsFunc(prefixIgnore, func(s string) bool {
				return strings.HasPrefix(flag.Name, s)
			}) {
			continue
		}

		if v, ok := flagValue(ktx.FlagValue(flag)); ok {
			doc.AddKey(ConfigIdentifier, flag.Name, v)
		}
	}

	return doc
}

// flagValue converts a parsed flag value to a LangCat value. Empty strings
// and empty slices are reported as unset.
func flagValue(val any) (lang.Value, bool) {
	switch v := val.(type) {
	case nil:
		return nil, false

	case string:
		if v == "" {
			return nil, false
		}

		return lang.String(v), true

	case []string:
		if len(v) == 0 {
			return nil, false
		}

		items := make([]lang.Value, len(v))
		for i, s := range v {
			items[i] = lang.String(s)
		}

		return lang.NewList(items...), true

	case fmt.Stringer:
		return lang.String(v.String()), true
	}

	v, err := lang.FromNative(val)
	if err != nil {
		return lang.String(fmt.Sprint(val)), true
	}

	if l, ok := v.(lang.List); ok && l.Len() == 0 {
		return nil, false
	}

	return v, true
}
