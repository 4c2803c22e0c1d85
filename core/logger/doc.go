// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) plus the two file sinks a load run writes:
//
//   - WithFile tees every entry into the run log (loader-<timestamp>.log) as JSON,
//     so duplicate keys, loadout truncations and unresolved references are
//     auditable after the run.
//   - NewLineLog creates the plain, one-line-per-entry log used for missing shop
//     references (missing_shops-<timestamp>.log).
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json, console, or empty to pick console when stderr is a terminal
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log, closeRunLog, _ := logger.WithFile(log, "out/loader.log")
//	defer closeRunLog()
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
