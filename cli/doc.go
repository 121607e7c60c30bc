// Package cli contains the command line interface for lacat.
//
// # Usage
//
//	lacat fmt app.lact            # re-emit in canonical LangCat form
//	lacat fmt json -i 4 app.lact  # convert to JSON
//	lacat get app.settings.volume # read file app.lact, group settings
//	lacat set app.user.name '"Alice"'
//	lacat eval 'settings.volume > 50' app.lact
//	lacat check *.lact
//
// File keys have the form file.group.key. The file segment names
// file.lact in the directory given by --dir (default ".").
//
// # Configuration
//
// Flag defaults are read from the group $config$ of the file
// config.lact in the user configuration directory (for example
// ~/.config/lacat/config.lact), then from config.lact.json beside it.
// The init command writes the current flag values there:
//
//	$config$:
//	    *log_level* -> "debug"
//	    *log_format* -> "text"
//	    *nested_lists* -> True
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o lacat .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default ~/.cache/lacat/pprof)
package cli
