package shell

import (
	"fmt"
	"strconv"
	"strings"

	"minisql/pkg/dberror"
	"minisql/pkg/engine"
)

type metaCommand struct {
	name  string
	args  string
	usage string
	run   func(s *Shell, args []string) Output
}

var metaCommands []metaCommand

func init() {
	metaCommands = []metaCommand{
		{name: `\c`, args: "[database]", usage: "select a database, or none without an argument", run: (*Shell).connect},
		{name: `\l`, usage: "list databases", run: (*Shell).listDatabases},
		{name: `\dt`, usage: "list tables of the selected database", run: (*Shell).listTables},
		{name: `\d`, args: "table", usage: "describe a table", run: (*Shell).describe},
		{name: `\s`, usage: "show statistics", run: (*Shell).statistics},
		{name: `\?`, usage: "show this help", run: (*Shell).help},
		{name: `\q`, usage: "quit", run: func(*Shell, []string) Output { return Output{Quit: true} }},
	}
}

func (s *Shell) runMeta(input string) Output {
	fields := strings.Fields(input)
	for _, cmd := range metaCommands {
		if cmd.name == fields[0] {
			return cmd.run(s, fields[1:])
		}
	}
	return s.fail(dberror.Newf(dberror.KindUnsupported, "unknown command %s", fields[0]).
		WithHint(`type \? for help`))
}

func (s *Shell) fail(err error) Output {
	return Output{Results: []engine.QueryResult{s.formatter.FormatError(err)}}
}

func message(msg string) Output {
	return Output{Results: []engine.QueryResult{{Success: true, Message: msg}}}
}

func grid(msg string, columns []string, rows [][]string) Output {
	return Output{Results: []engine.QueryResult{{
		Success: true,
		Columns: columns,
		Rows:    rows,
		Message: msg,
	}}}
}

func (s *Shell) connect(args []string) Output {
	if len(args) > 1 {
		return s.fail(dberror.New(dberror.KindSyntax, `\c takes at most one database name`))
	}
	if len(args) == 0 {
		_ = s.session.Use("")
		return message("No database selected")
	}
	if err := s.session.Use(args[0]); err != nil {
		return s.fail(err)
	}
	return message(fmt.Sprintf("Connected to database '%s'", args[0]))
}

func (s *Shell) listDatabases([]string) Output {
	names := s.engine.Catalog().ListDatabases()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		tables, err := s.engine.Tables(name)
		if err != nil {
			continue
		}
		rows = append(rows, []string{name, strconv.Itoa(len(tables))})
	}
	return grid(fmt.Sprintf("%d database(s)", len(rows)), []string{"Database", "Tables"}, rows)
}

func (s *Shell) listTables([]string) Output {
	current := s.session.Current()
	if current == "" {
		return s.fail(dberror.NoDatabaseSelected())
	}
	names, err := s.engine.Tables(current)
	if err != nil {
		return s.fail(err)
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		t, err := s.engine.Catalog().ResolveTable(current, name)
		if err != nil {
			continue
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(t.NumColumns()),
			strconv.Itoa(t.RowCount()),
			strconv.Itoa(t.NumPages()),
		})
	}
	return grid(fmt.Sprintf("%d table(s)", len(rows)), []string{"Table", "Columns", "Rows", "Pages"}, rows)
}

func (s *Shell) describe(args []string) Output {
	if len(args) != 1 {
		return s.fail(dberror.New(dberror.KindSyntax, `\d takes exactly one table name`))
	}
	current := s.session.Current()
	if current == "" {
		return s.fail(dberror.NoDatabaseSelected())
	}
	cols, err := s.engine.Describe(current, args[0])
	if err != nil {
		return s.fail(err)
	}

	rows := make([][]string, len(cols))
	for i, c := range cols {
		rows[i] = []string{c.Name, c.Type.String()}
	}
	return grid(fmt.Sprintf("Table '%s'", args[0]), []string{"Column", "Type"}, rows)
}

func (s *Shell) statistics([]string) Output {
	info := s.engine.Statistics()
	current := s.session.Current()
	if current == "" {
		current = "(none)"
	}
	rows := [][]string{
		{"Current Database", current},
		{"Databases", strconv.Itoa(info.DatabaseCount)},
		{"Queries Executed", strconv.FormatInt(info.QueriesExecuted, 10)},
		{"Errors", strconv.FormatInt(info.ErrorCount, 10)},
	}
	return grid("Engine statistics", []string{"Metric", "Value"}, rows)
}

func (s *Shell) help([]string) Output {
	rows := make([][]string, len(metaCommands))
	for i, cmd := range metaCommands {
		name := cmd.name
		if cmd.args != "" {
			name += " " + cmd.args
		}
		rows[i] = []string{name, cmd.usage}
	}
	return grid("Statements end with ';'", []string{"Command", "Description"}, rows)
}
