package lang

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileExt is the file name extension of LangCat documents.
const FileExt = ".lact"

// SaveFile writes the rendering of doc to path, replacing any existing
// content. A failed write may leave the file truncated.
func SaveFile(ctx context.Context, doc *Document, path string, opts ...Option) error {
	o := makeOptions(opts...)

	if err := os.WriteFile(path, []byte(doc.String()), 0o644); err != nil {
		return ErrWriteFile.Wrap(err).With(slog.String("path", path))
	}

	o.logger.DebugContext(ctx, "document saved",
		slog.String("path", path),
		slog.Int("groups", doc.Len()))

	return nil
}

// LoadFile reads and parses the document at path.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrReadFile.Wrap(err).With(slog.String("path", path))
	}

	doc, err := ParseString(ctx, string(data), opts...)
	if err != nil {
		return nil, WrapError(err).With(slog.String("path", path))
	}

	makeOptions(opts...).logger.DebugContext(ctx, "document loaded",
		slog.String("path", path),
		slog.Int("groups", doc.Len()))

	return doc, nil
}

// LoadValue resolves a key of the form "file.group.key". The document is
// read from file+[FileExt] in the directory set by [WithDir].
// A missing group or key is reported with ok == false and a nil error.
func LoadValue(ctx context.Context, key string, opts ...Option) (v Value, ok bool, err error) {
	file, dotted, err := SplitFileKey(key)
	if err != nil {
		return nil, false, err
	}

	doc, err := LoadFile(ctx, FilePath(file, opts...), opts...)
	if err != nil {
		return nil, false, err
	}

	return doc.Lookup(dotted)
}

// SplitFileKey splits "file.group.key" into the file base name and the
// dotted "group.key". The key must have exactly three segments.
func SplitFileKey(key string) (file, dotted string, err error) {
	parts := strings.Split(key, ".")
	if len(parts) != 3 {
		return "", "", ErrInvalidKeyFormat.With(
			slog.String("key", key),
			slog.Int("segments", len(parts)))
	}

	return parts[0], parts[1] + "." + parts[2], nil
}

// FilePath returns the path of the document with the given base name,
// relative to the directory set by [WithDir].
func FilePath(base string, opts ...Option) string {
	return filepath.Join(makeOptions(opts...).dir, base+FileExt)
}
