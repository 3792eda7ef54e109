// Package logging provides a process-wide structured logger for minisql.
//
// The package wraps [log/slog] and exposes a single global logger instance
// that is initialized once and then retrieved via GetLogger. All subsystems
// obtain a logger through this package rather than constructing their own
// slog.Logger values, so that log level and output destination are
// controlled from a single place.
//
// # Initialisation
//
// Call Init once at program startup:
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug, OutputPath: "minisql.log"}); err != nil {
//	    log.Fatal(err)
//	}
//
// Until then GetLogger hands out a text logger on stderr at DefaultLevel.
// Stdout is left to the REPL.
//
// # Context helpers
//
// Several helpers return child loggers pre-populated with structured fields:
//
//	log := logging.WithComponent("executor") // adds component field
//	log := logging.WithTable(db, name)       // adds database and table fields
//	log := logging.WithStore(id)             // adds store field
//
// Statement failures are returned to the caller and never logged. Schema
// changes are recorded at INFO, row statements and storage detail at DEBUG,
// and storage cleanup problems at WARN.
package logging
