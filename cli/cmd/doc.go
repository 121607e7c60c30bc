// Package cmd implements the lacat subcommands.
//
// Every command reads LangCat documents from files or stdin ("-") and writes
// its result to the output stored in the context by [WithOutput]. Library
// options derived from global flags are passed through [WithOptions].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file. It is also the name of the group read from
	// that file.
	ConfigIdentifier = "config"
)
