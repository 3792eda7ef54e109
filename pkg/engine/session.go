package engine

import (
	"sync"

	"minisql/pkg/executor"
)

// Session holds the database a client is working in. It stores only the
// name; the database is resolved again by every statement, so a database
// dropped elsewhere surfaces as NOT_FOUND rather than a stale handle.
type Session struct {
	engine *Engine

	mu      sync.RWMutex
	current string
}

// NewSession starts a session with no database selected.
func (e *Engine) NewSession() *Session {
	return &Session{engine: e}
}

// Current is the selected database, or "" when none is.
func (s *Session) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Use selects database name. An empty name deselects the current database.
func (s *Session) Use(name string) error {
	if name != "" {
		if _, err := s.engine.catalog.ResolveDatabase(name); err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.current = name
	s.mu.Unlock()
	return nil
}

// Execute runs one statement in the selected database.
func (s *Session) Execute(sql string) (*executor.Result, error) {
	return s.engine.Execute(sql, s.Current())
}

// ExecuteScript runs a script in the selected database.
func (s *Session) ExecuteScript(sql string) ([]*executor.Result, error) {
	return s.engine.ExecuteScript(sql, s.Current())
}
