package lang

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveFile_LoadFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app"+FileExt)

	doc := mustParse(t, scenario)
	if err := SaveFile(ctx, doc, path); err != nil {
		t.Fatalf("SaveFile error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}

	if string(data) != scenario {
		t.Errorf("file content =\n%s\nwant:\n%s", data, scenario)
	}

	loaded, err := LoadFile(ctx, path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}

	if !loaded.Equal(doc) {
		t.Errorf("loaded document differs:\n%s", loaded)
	}
}

func TestSaveFile_Overwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app"+FileExt)

	if err := os.WriteFile(path, []byte("a much longer previous content than the new one\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	doc := NewDocument()
	doc.AddKey("g", "k", Integer(1))

	if err := SaveFile(ctx, doc, path); err != nil {
		t.Fatalf("SaveFile error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "$g$:\n    *k* -> 1\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestSaveFile_Error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "app"+FileExt)

	err := SaveFile(context.Background(), NewDocument(), path)
	if !errors.Is(err, ErrWriteFile) {
		t.Fatalf("error = %v, want %v", err, ErrWriteFile)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap the I/O cause", err)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(context.Background(), filepath.Join(dir, "nope"+FileExt))
	if !errors.Is(err, ErrReadFile) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}

	bad := filepath.Join(dir, "bad"+FileExt)
	if err := os.WriteFile(bad, []byte("$g$:\n$g$:\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err = LoadFile(context.Background(), bad)
	if !errors.Is(err, ErrDuplicateGroupName) {
		t.Fatalf("parse error = %v, want %v", err, ErrDuplicateGroupName)
	}

	var e *Error
	if errors.As(err, &e) {
		if v, _ := e.Attr("path"); v.String() != bad {
			t.Errorf("path attr = %v, want %s", v, bad)
		}
	}
}

func TestLoadValue(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	if err := SaveFile(ctx, mustParse(t, scenario), FilePath("app", WithDir(dir))); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key   string
		want  Value
		found bool
		errIs error
	}{
		{"app.settings.volume", Integer(75), true, nil},
		{"app.tags.names", NewList(String("a"), String("b")), true, nil},
		{"app.settings.missing", nil, false, nil},
		{"app.absent.volume", nil, false, nil},
		{"settings.volume", nil, false, ErrInvalidKeyFormat},
		{"a.b.c.d", nil, false, ErrInvalidKeyFormat},
		{"other.settings.volume", nil, false, ErrReadFile},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok, err := LoadValue(ctx, tt.key, WithDir(dir))
			if !errors.Is(err, tt.errIs) {
				t.Fatalf("LoadValue(%q) error = %v, want %v", tt.key, err, tt.errIs)
			}

			if ok != tt.found || !Equal(got, tt.want) {
				t.Errorf("LoadValue(%q) = (%v, %v), want (%v, %v)", tt.key, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestSplitFileKey(t *testing.T) {
	file, dotted, err := SplitFileKey("app.settings.volume")
	if err != nil {
		t.Fatal(err)
	}

	if file != "app" || dotted != "settings.volume" {
		t.Errorf("SplitFileKey = (%q, %q)", file, dotted)
	}

	if _, _, err := SplitFileKey("app.settings"); !errors.Is(err, ErrInvalidKeyFormat) {
		t.Errorf("two segments: error = %v", err)
	}
}
