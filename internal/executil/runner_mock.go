package executil

import "context"

// MockRunner is a mock implementation of Runner for testing
type MockRunner struct {
	RunFunc func(ctx context.Context, args []string) (Result, error)

	// Calls records every argument vector passed to Run.
	Calls [][]string
}

// Run implements Runner.Run
func (m *MockRunner) Run(ctx context.Context, args []string) (Result, error) {
	m.Calls = append(m.Calls, args)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, args)
	}
	return Result{}, nil
}
