package core

import (
	"fmt"
	"sync"
)

// MockExecutor records every program it receives. It stands in for the
// external circuit-execution engine in tests.
type MockExecutor struct {
	mu       sync.Mutex
	programs []*Program
	FailWith error
}

func (m *MockExecutor) Execute(p *Program) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.programs = append(m.programs, p.Clone())
	return nil
}

func (m *MockExecutor) Executed() []*Program {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Program, len(m.programs))
	copy(out, m.programs)
	return out
}

func (m *MockExecutor) ExecutedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.programs)
}

// StdoutExecutor prints each program as pretty JSON. Used by the emit
// command where the "engine" is whoever reads the output.
type StdoutExecutor struct{}

func (s *StdoutExecutor) Execute(p *Program) error {
	fmt.Println(p.ToString())
	return nil
}
