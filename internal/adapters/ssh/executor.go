// Package ssh runs commands on remote hosts over SSH.
package ssh

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"al.essio.dev/pkg/shellescape"
	"go.trai.ch/herd/internal/adapters/linelog"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/herd/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// DefaultDialTimeout bounds the TCP connect and SSH handshake.
const DefaultDialTimeout = 30 * time.Second

// Executor implements ports.RemoteExecutor. Clients are cached per host for the
// lifetime of the executor.
type Executor struct {
	logger  ports.Logger
	timeout time.Duration

	mu      sync.Mutex
	clients map[string]*ssh.Client
}

// Option configures an Executor.
type Option func(*Executor)

// WithDialTimeout overrides DefaultDialTimeout.
func WithDialTimeout(d time.Duration) Option {
	return func(e *Executor) {
		e.timeout = d
	}
}

// NewExecutor creates a new SSH executor.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{
		logger:  logger,
		timeout: DefaultDialTimeout,
		clients: make(map[string]*ssh.Client),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes command on host. Remote stdout and stderr are logged line by line.
func (e *Executor) Run(ctx context.Context, host domain.Host, command string) error {
	e.logger.Info("[" + host.Login() + "] run: " + command)

	prefix := "[" + host.Login() + "] out: "
	out := linelog.New(func(line string) { e.logger.Info(prefix + line) })
	defer func() { _ = out.Close() }()

	err := e.exec(ctx, host, command, nil, out, out)
	if err != nil {
		return withHost(wrapExit(err, domain.ErrRemoteCommandFailed, "remote command failed"), host, command)
	}
	return nil
}

// Put writes content to remotePath on host.
func (e *Executor) Put(ctx context.Context, host domain.Host, content io.Reader, remotePath string) error {
	e.logger.Info("[" + host.Login() + "] put: " + remotePath)

	var stderr bytes.Buffer
	err := e.exec(ctx, host, "cat > "+shellescape.Quote(remotePath), content, io.Discard, &stderr)
	if err != nil {
		return zerr.With(withHost(wrapTransfer(err, &stderr), host, ""), "path", remotePath)
	}
	return nil
}

// Get copies remotePath on host into w.
func (e *Executor) Get(ctx context.Context, host domain.Host, remotePath string, w io.Writer) error {
	e.logger.Info("[" + host.Login() + "] get: " + remotePath)

	var stderr bytes.Buffer
	err := e.exec(ctx, host, "cat "+shellescape.Quote(remotePath), nil, w, &stderr)
	if err != nil {
		return zerr.With(withHost(wrapTransfer(err, &stderr), host, ""), "path", remotePath)
	}
	return nil
}

// Close releases every cached connection.
func (e *Executor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var errs []error
	for key, c := range e.clients {
		if err := c.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			errs = append(errs, err)
		}
		delete(e.clients, key)
	}
	return errors.Join(errs...)
}

func (e *Executor) exec(
	ctx context.Context,
	host domain.Host,
	command string,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	client, err := e.client(ctx, host)
	if err != nil {
		return err
	}

	session, err := client.NewSession()
	if err != nil {
		e.forget(host)
		return zerr.Wrap(err, "failed to open session")
	}
	defer func() { _ = session.Close() }()

	session.Stdin = stdin
	session.Stdout = stdout
	session.Stderr = stderr

	done := make(chan error, 1)
	go func() { done <- session.Run(command) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		_ = session.Signal(ssh.SIGKILL)
		_ = session.Close()
		return ctx.Err()
	}
}

func (e *Executor) client(ctx context.Context, host domain.Host) (*ssh.Client, error) {
	key := host.String()

	e.mu.Lock()
	defer e.mu.Unlock()

	if c, ok := e.clients[key]; ok {
		return c, nil
	}

	c, err := e.dial(ctx, host)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConnectionFailed, err.Error()), "host", key)
	}
	e.clients[key] = c
	return c, nil
}

func (e *Executor) dial(ctx context.Context, host domain.Host) (*ssh.Client, error) {
	callback, err := hostKeyCallback(host.KnownHosts)
	if err != nil {
		return nil, err
	}

	config := &ssh.ClientConfig{
		User: host.User,
		Auth: []ssh.AuthMethod{
			ssh.Password(host.Password),
			ssh.KeyboardInteractive(func(_, _ string, questions []string, _ []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range answers {
					answers[i] = host.Password
				}
				return answers, nil
			}),
		},
		HostKeyCallback: callback,
		Timeout:         e.timeout,
	}

	dialer := net.Dialer{Timeout: e.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", host.Addr())
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, chans, reqs, err := ssh.NewClientConn(conn, host.Addr(), config)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	_ = conn.SetDeadline(time.Time{})
	return ssh.NewClient(c, chans, reqs), nil
}

func (e *Executor) forget(host domain.Host) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c, ok := e.clients[host.String()]; ok {
		_ = c.Close()
		delete(e.clients, host.String())
	}
}

func hostKeyCallback(path string) (ssh.HostKeyCallback, error) {
	if path == "" {
		//nolint:gosec // freshly built boxes have no known key yet
		return ssh.InsecureIgnoreHostKey(), nil
	}
	cb, err := knownhosts.New(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read known_hosts"), "path", path)
	}
	return cb, nil
}

func wrapExit(err error, sentinel error, msg string) error {
	var exitErr *ssh.ExitError
	if errors.As(err, &exitErr) {
		return zerr.With(zerr.Wrap(sentinel, msg), "exit_code", exitErr.ExitStatus())
	}
	if errors.Is(err, domain.ErrConnectionFailed) || errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return zerr.Wrap(sentinel, err.Error())
}

func wrapTransfer(err error, stderr *bytes.Buffer) error {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		msg = "file transfer failed"
	}
	return wrapExit(err, domain.ErrTransferFailed, msg)
}

func withHost(err error, host domain.Host, command string) error {
	if errors.Is(err, domain.ErrConnectionFailed) {
		return err
	}
	err = zerr.With(err, "host", host.String())
	if command != "" {
		err = zerr.With(err, "command", command)
	}
	return err
}
