package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"

	tea "github.com/charmbracelet/bubbletea"

	"minisql/pkg/dberror"
	"minisql/pkg/engine"
	"minisql/pkg/logging"
	"minisql/pkg/shell"
	"minisql/pkg/ui"
)

type Configuration struct {
	DataDir      string
	DatabaseName string
	ImportFile   string
	Plain        bool
	LogPath      string
	LogLevel     string
	LogFormat    string
	HistoryFile  string
}

func main() {
	config := parseArguments()

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "minisql: %v\n", err)
		os.Exit(1)
	}
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var config Configuration

	flag.StringVar(&config.DataDir, "data", "", "Data directory path (empty keeps everything in memory)")
	flag.StringVar(&config.DatabaseName, "db", "", "Database to select at startup, created if missing")
	flag.StringVar(&config.ImportFile, "import", "", "SQL file to execute on startup")
	flag.BoolVar(&config.Plain, "plain", false, "Use a line-mode prompt instead of the full-screen UI")
	flag.StringVar(&config.LogPath, "log", "", "Log file (default stderr)")
	flag.StringVar(&config.LogLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flag.StringVar(&config.LogFormat, "log-format", "text", "Log format: text or json")
	flag.StringVar(&config.HistoryFile, "history", "", "History file for the line-mode prompt")

	flag.Parse()

	return config
}

func run(config Configuration) error {
	if err := logging.Init(logging.Config{
		Level:      logging.ParseLevel(config.LogLevel),
		OutputPath: config.LogPath,
		Format:     config.LogFormat,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Close()

	eng, err := openEngine(config.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer eng.Close()

	sh := shell.New(eng)

	if config.DatabaseName != "" {
		if err := selectDatabase(sh, config.DatabaseName); err != nil {
			return err
		}
	}

	if config.ImportFile != "" {
		if err := importData(sh, config.ImportFile); err != nil {
			return err
		}
	}

	if config.Plain {
		return runPlain(sh, config.HistoryFile)
	}
	return startInteractiveMode(sh)
}

func openEngine(dataDir string) (*engine.Engine, error) {
	if dataDir == "" {
		return engine.New(engine.Options{})
	}
	return engine.Open(dataDir)
}

// selectDatabase makes name the current database, creating it first if it
// does not exist yet.
func selectDatabase(sh *shell.Shell, name string) error {
	err := sh.Session().Use(name)
	if !errors.Is(err, dberror.ErrNotFound) {
		return err
	}
	if err := sh.Engine().CreateDatabase(name); err != nil {
		return err
	}
	logging.WithDatabase(name).Info("database created at startup")
	return sh.Session().Use(name)
}

// importData executes the statements of a SQL file and stops at the first
// failing one.
func importData(sh *shell.Shell, filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	out := sh.Run(string(content))
	if out.Failed() {
		_ = ui.WriteOutput(os.Stderr, out)
		return fmt.Errorf("import of %s failed after %d statement(s)", filename, len(out.Results)-1)
	}
	fmt.Printf("Imported %d statement(s) from %s\n", len(out.Results), filename)
	return nil
}

// startInteractiveMode launches the Bubble Tea UI
func startInteractiveMode(sh *shell.Shell) error {
	p := tea.NewProgram(
		ui.NewModel(sh),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// runPlain reads statements line by line until each buffer is complete,
// then runs it and prints the results.
func runPlain(sh *shell.Shell, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sh.Prompt(false),
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       `\q`,
	})
	if err != nil {
		return fmt.Errorf("failed to start prompt: %w", err)
	}
	defer rl.Close()

	banner := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true).
		Render("minisql")
	fmt.Fprintf(rl.Stdout(), "%s  type \\? for help, \\q to quit\n", banner)

	var buffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer.Reset()
			rl.SetPrompt(sh.Prompt(false))
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if buffer.Len() > 0 {
			buffer.WriteString("\n")
		}
		buffer.WriteString(line)
		if !shell.Complete(buffer.String()) {
			if strings.TrimSpace(buffer.String()) == "" {
				buffer.Reset()
			} else {
				rl.SetPrompt(sh.Prompt(true))
			}
			continue
		}

		out := sh.Run(buffer.String())
		buffer.Reset()
		if err := ui.WriteOutput(rl.Stdout(), out); err != nil {
			return err
		}
		if out.Quit {
			return nil
		}
		rl.SetPrompt(sh.Prompt(false))
	}
}
