package cmd

import (
	"context"
	"fmt"

	"github.com/lacycat/langcat/pkg"
)

// Version prints the program version.
type Version struct {
	Short bool `help:"Print only the version number." short:"s"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	w := outputFrom(ctx)

	if v.Short {
		_, err := fmt.Fprintln(w, pkg.Version)

		return err
	}

	_, err := fmt.Fprintf(w, "%s %s (%s)\n", pkg.Name, pkg.Version, pkg.Description)

	return err
}
