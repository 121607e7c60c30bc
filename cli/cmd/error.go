package cmd

import "github.com/lacycat/langcat/lang"

var (
	ErrJSONMarshal = lang.NewError("marshal JSON")
	ErrYAMLMarshal = lang.NewError("marshal YAML")
	ErrWriteConfig = lang.NewError("write configuration file")
	ErrFileExists  = lang.NewError("file exists (use --force to overwrite)")
	ErrCheck       = lang.NewError("check failed")
)
