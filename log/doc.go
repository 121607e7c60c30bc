// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Time formatting, caller information, level and output format are applied
// at logger creation time using functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("document loaded", slog.String("path", path))
//	logger.Error("write failed", slog.Any("error", err))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// A derived logger with different settings is created with [Logger.Wrap];
// persistent attributes are added with [Logger.With].
//
// # Zero Value
//
// The zero [Logger] discards every message. Libraries hold a zero Logger by
// default so that nothing is written unless the caller supplies one.
//
// # Default Logger
//
// The package-level functions ([Info], [Debug], ...) write through a
// default logger that is reconfigured with [Config]. Every level has a
// context-aware variant; context-unaware variants use
// [DefaultContextProvider].
//
// # Levels and Formats
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn] and [LevelError]. Two output formats are supported:
// [FormatJSON] (default) and [FormatText]. Pretty printing colourises text
// output.
package log
