package ports

import (
	"context"
)

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs command with the additional environment variables in env.
	//
	// The env parameter contains environment variables in "KEY=VALUE" format.
	// It returns an error if the command exits with a non-zero status.
	Execute(ctx context.Context, command []string, env []string) error
}
