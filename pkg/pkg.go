//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of the module embedded at build time.
// It is printed by the version subcommand.
var Version = strings.TrimSpace(version)

const (
	// Name is the canonical command identifier. It appears in help text and
	// in the default configuration paths.
	Name = "lacat"
	// Description is a short summary of the project used in help output.
	Description = "LangCat configuration file tool"
	// ConfigExt is the file extension of LangCat documents.
	ConfigExt = ".lact"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"LacyCat", "lacycat@users.noreply.github.com"},
}
