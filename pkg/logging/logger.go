package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogLevel is the verbosity named on the command line.
type LogLevel string

const (
	LevelDebug LogLevel = "DEBUG"
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// DefaultLevel is used until Init is called. Schema changes are logged at
// INFO and row statements at DEBUG, so by default a session stays quiet
// unless table storage could not be cleaned up.
const DefaultLevel = LevelWarn

// ParseLevel maps a flag value such as "debug" or "WARN" to a LogLevel.
// Unknown values fall back to LevelInfo.
func ParseLevel(s string) LogLevel {
	switch l := LogLevel(strings.ToUpper(s)); l {
	case LevelDebug, LevelWarn, LevelError:
		return l
	default:
		return LevelInfo
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config selects where records go and how they look.
type Config struct {
	Level LogLevel

	// OutputPath is a log file, created with its directory if missing.
	// Empty means stderr: stdout belongs to the REPL and query output.
	OutputPath string

	// Format is "json" or "text" (the default).
	Format string

	// Writer overrides OutputPath when set. Tests use it to capture records.
	Writer io.Writer
}

var (
	mu       sync.RWMutex
	logger   *slog.Logger
	logFile  *os.File
	initOnce sync.Once
)

// Init installs the process-wide logger. It fails if a logger is already
// installed; call Close first to replace it.
//
//	logging.Init(logging.Config{
//	    Level:      logging.ParseLevel(*logLevel),
//	    OutputPath: "logs/minisql.log",
//	    Format:     "json",
//	})
func Init(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return errors.New("logger already initialized; call Close() first to reinitialize")
	}

	w, file, err := openOutput(config)
	if err != nil {
		return err
	}
	logger = slog.New(newHandler(w, config.Format, config.Level.slogLevel()))
	logFile = file
	return nil
}

func openOutput(config Config) (io.Writer, *os.File, error) {
	switch {
	case config.Writer != nil:
		return config.Writer, nil, nil
	case config.OutputPath == "":
		return os.Stderr, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(config.OutputPath), 0o750); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(config.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Close removes the installed logger and closes its log file. Calling it
// without a logger is a no-op.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	var err error
	if logFile != nil {
		err = logFile.Close()
		logFile = nil
	}
	logger = nil
	initOnce = sync.Once{}
	return err
}

// GetLogger returns the installed logger. Packages that log before Init,
// such as tests, get a text logger on stderr at DefaultLevel.
func GetLogger() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}

	initOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		if logger == nil {
			logger = slog.New(newHandler(os.Stderr, "text", DefaultLevel.slogLevel()))
		}
	})

	mu.RLock()
	defer mu.RUnlock()
	return logger
}
