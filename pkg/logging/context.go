package logging

import (
	"log/slog"
)

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("catalog")
//	log.Debug("database created", "database", name)
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithDatabase creates a logger with database context.
//
// Example:
//
//	log := logging.WithDatabase("shop")
//	log.Debug("table dropped", "table", "orders")
func WithDatabase(database string) *slog.Logger {
	return GetLogger().With("database", database)
}

// WithTable creates a logger with both database and table context.
// Use this for catalog and heap operations.
//
// Example:
//
//	log := logging.WithTable("shop", "users")
//	log.Debug("rows updated", "count", 3)
func WithTable(database, table string) *slog.Logger {
	return GetLogger().With("database", database, "table", table)
}

// WithStatement creates a logger with the statement kind and the database the
// caller had selected when the statement ran.
func WithStatement(kind, database string) *slog.Logger {
	return GetLogger().With("statement", kind, "database", database)
}

// WithStore creates a logger with storage context.
func WithStore(storeID string) *slog.Logger {
	return GetLogger().With("store", storeID)
}

// WithError creates a logger with error context.
// Use this when logging errors to include the error in structured format.
//
// Example:
//
//	log := logging.WithError(err)
//	log.Warn("cleanup failed", "store", id)
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
