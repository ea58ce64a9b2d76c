package ports

import (
	"context"
	"io"

	"go.trai.ch/herd/internal/core/domain"
)

//go:generate mockgen -source=remote.go -destination=mocks/mock_remote.go -package=mocks

// RemoteExecutor runs commands on and copies files to remote hosts.
type RemoteExecutor interface {
	// Run executes command on host, streaming its output to the log.
	Run(ctx context.Context, host domain.Host, command string) error
	// Put writes content to remotePath on host.
	Put(ctx context.Context, host domain.Host, content io.Reader, remotePath string) error
	// Get copies remotePath on host into w.
	Get(ctx context.Context, host domain.Host, remotePath string, w io.Writer) error
	// Close releases every open connection.
	Close() error
}
