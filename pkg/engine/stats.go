package engine

import "sync"

// Stats counts executed statements.
type Stats struct {
	mutex           sync.RWMutex
	QueriesExecuted int64
	ErrorCount      int64
}

func (s *Stats) recordError() {
	s.mutex.Lock()
	s.ErrorCount++
	s.mutex.Unlock()
}

func (s *Stats) recordSuccess() {
	s.mutex.Lock()
	s.QueriesExecuted++
	s.mutex.Unlock()
}

func (s *Stats) snapshot() (queries, errs int64) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.QueriesExecuted, s.ErrorCount
}

// Info contains engine metadata.
type Info struct {
	Databases       []string
	DatabaseCount   int
	QueriesExecuted int64
	ErrorCount      int64
}
