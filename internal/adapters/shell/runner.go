// Package shell runs commands on the operator's machine.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"go.trai.ch/herd/internal/adapters/linelog"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/herd/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Runner implements ports.LocalRunner using os/exec and pty.
type Runner struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdio overrides the streams interactive commands are attached to.
func WithStdio(in io.Reader, out io.Writer) Option {
	return func(r *Runner) {
		r.stdin = in
		r.stdout = out
	}
}

// NewRunner creates a new Runner attached to the process's standard streams.
func NewRunner(logger ports.Logger, opts ...Option) *Runner {
	r := &Runner{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes cmd, logging stdout lines as info and stderr lines as warnings.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	r.logger.Info("[local] run: " + cmd.String())

	stdout := linelog.New(r.logger.Info)
	stderr := linelog.New(r.logger.Warn)
	defer func() {
		_ = stdout.Close()
		_ = stderr.Close()
	}()

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // operator supplied
	c.Dir = cmd.Dir
	c.Stdout = stdout
	c.Stderr = stderr

	return commandError(c.Run(), cmd)
}

// Interactive executes cmd attached to the operator's terminal. When stdin is a
// terminal the command gets a pty sized like it, otherwise the streams are wired directly.
func (r *Runner) Interactive(ctx context.Context, cmd domain.Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // operator supplied
	c.Dir = cmd.Dir

	f, ok := r.stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		c.Stdin = r.stdin
		c.Stdout = r.stdout
		c.Stderr = r.stdout
		return commandError(c.Run(), cmd)
	}

	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return zerr.Wrap(err, "failed to switch terminal to raw mode")
	}
	defer func() { _ = term.Restore(fd, state) }()

	resize := func(ptmx *os.File) {
		_ = pty.InheritSize(f, ptmx)
	}
	return commandError(attachPTY(c, r.stdin, r.stdout, resize), cmd)
}

// attachPTY runs c on a new pty, copying in to it and its output to out.
func attachPTY(c *exec.Cmd, in io.Reader, out io.Writer, resize func(*os.File)) error {
	ptmx, err := pty.Start(c)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}
	defer func() { _ = ptmx.Close() }()

	if resize != nil {
		resize(ptmx)
		winch := make(chan os.Signal, 1)
		signal.Notify(winch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(winch)
			close(winch)
		}()
		go func() {
			for range winch {
				resize(ptmx)
			}
		}()
	}

	go func() { _, _ = io.Copy(ptmx, in) }()

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		_, _ = io.Copy(out, ptmx)
	}()

	err = c.Wait()
	<-ioDone
	return err
}

func commandError(err error, cmd domain.Command) error {
	if err == nil {
		return nil
	}
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(zerr.With(
		zerr.Wrap(domain.ErrLocalCommandFailed, err.Error()),
		"command", cmd.String()), "exit_code", exitCode)
}
