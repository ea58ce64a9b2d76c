package ports

import (
	"context"

	"go.trai.ch/herd/internal/core/domain"
)

//go:generate mockgen -source=local.go -destination=mocks/mock_local.go -package=mocks

// LocalRunner runs commands on the operator's machine.
type LocalRunner interface {
	// Run executes cmd and streams its output to the log.
	Run(ctx context.Context, cmd domain.Command) error
	// Interactive executes cmd attached to the operator's terminal.
	Interactive(ctx context.Context, cmd domain.Command) error
}
