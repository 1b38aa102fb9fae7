package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmakegen/internal/adapters/buildinfo" //nolint:depguard // Wired in app layer
	"go.trai.ch/cmakegen/internal/adapters/cmake"     //nolint:depguard // Wired in app layer
	"go.trai.ch/cmakegen/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cmakegen/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/cmakegen/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cmakegen/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups what the entry point needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			buildinfo.NodeID,
			cmake.NodeID,
			fs.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	decoder, err := graft.Dep[ports.BuildInfoDecoder](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.ManifestRenderer](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, decoder, renderer, store, log), nil
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

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
