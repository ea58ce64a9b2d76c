package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/herd/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/herd/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/herd/internal/adapters/openstack" //nolint:depguard // Wired in app layer
	"go.trai.ch/herd/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/herd/internal/adapters/saltcloud" //nolint:depguard // Wired in app layer
	"go.trai.ch/herd/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/herd/internal/adapters/ssh"       //nolint:depguard // Wired in app layer
	"go.trai.ch/herd/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/herd/internal/core/ports"
	"go.trai.ch/herd/internal/engine/tasks"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			openstack.NodeID,
			prompt.NodeID,
			saltcloud.NodeID,
			shell.NodeID,
			ssh.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	connector, err := graft.Dep[ports.CloudConnector](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	profiles, err := graft.Dep[ports.ProfileStore](ctx)
	if err != nil {
		return nil, err
	}

	local, err := graft.Dep[ports.LocalRunner](ctx)
	if err != nil {
		return nil, err
	}

	remote, err := graft.Dep[ports.RemoteExecutor](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	deps := tasks.Deps{
		Logger:    log,
		Connector: connector,
		Remote:    remote,
		Local:     local,
		Prompter:  prompter,
		Profiles:  profiles,
	}
	return New(loader, tasks.NewRegistry(), tracer, deps), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
		Tracer: tracer,
	}, nil
}
