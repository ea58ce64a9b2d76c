// Package main is the entry point for the herd CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/herd/cmd/herd/commands"
	"go.trai.ch/herd/internal/app"
	_ "go.trai.ch/herd/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.Tracer.Shutdown(context.WithoutCancel(ctx)) }()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	if l, ok := components.Logger.(interface{ SetJSON(bool) }); ok {
		cli.SetJSONHook(l.SetJSON)
	}

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
