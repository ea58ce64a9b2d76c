// Package app implements the application layer for herd.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/herd/internal/core/ports"
	"go.trai.ch/herd/internal/engine/registry"
	"go.trai.ch/herd/internal/engine/tasks"
	"go.trai.ch/herd/internal/ui/output"
	"go.trai.ch/herd/internal/ui/style"
	"go.trai.ch/zerr"
)

// RunOptions configures a run.
type RunOptions struct {
	// SettingsPath is the settings file to load.
	SettingsPath string
}

// App resolves task invocations and runs them against one session.
type App struct {
	loader   ports.SettingsLoader
	registry *registry.Registry[*tasks.Session]
	tracer   ports.Tracer
	deps     tasks.Deps
}

// New creates a new App instance.
func New(
	loader ports.SettingsLoader,
	reg *registry.Registry[*tasks.Session],
	tracer ports.Tracer,
	deps tasks.Deps,
) *App {
	return &App{
		loader:   loader,
		registry: reg,
		tracer:   tracer,
		deps:     deps,
	}
}

// Run parses and runs the given task tokens in order. Every token is resolved
// before the settings are read, so a typo fails before anything happens.
func (a *App) Run(ctx context.Context, tokens []string, opts RunOptions) (err error) {
	if len(tokens) == 0 {
		return domain.ErrNoTasksSpecified
	}

	invocations := make([]domain.Invocation, 0, len(tokens))
	for _, token := range tokens {
		inv, err := domain.ParseInvocation(token)
		if err != nil {
			return err
		}
		if _, err := a.registry.Lookup(inv.Task); err != nil {
			return err
		}
		invocations = append(invocations, inv)
	}

	settings, err := a.loader.Load(opts.SettingsPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}

	session := tasks.NewSession(settings, a.deps)
	defer func() {
		if closeErr := session.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for _, inv := range invocations {
		if err := a.invoke(ctx, session, inv); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) invoke(ctx context.Context, session *tasks.Session, inv domain.Invocation) error {
	ctx, span := a.tracer.Start(ctx, inv.Task)
	defer span.End()

	span.SetAttribute("herd.task", inv.Task)
	span.SetAttribute("herd.args", len(inv.Positional)+len(inv.Named))

	err := a.registry.Invoke(ctx, session, inv)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// List writes one line per registered task: its signature and summary.
func (a *App) List(w io.Writer) error {
	specs := a.registry.Specs()
	width := 0
	for _, spec := range specs {
		width = max(width, len(spec.Signature()))
	}

	out := output.New(w)
	for _, spec := range specs {
		sig := spec.Signature()
		pad := strings.Repeat(" ", width-len(sig))
		_, err := fmt.Fprintf(w, "%s%s  %s\n",
			output.Paint(out, sig, style.Iris), pad, output.Paint(out, spec.Summary, style.Slate))
		if err != nil {
			return err
		}
	}
	return nil
}

// Init writes the example settings file to path.
func (a *App) Init(path string) error {
	return a.loader.WriteExample(path)
}
