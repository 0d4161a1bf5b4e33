package platform

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/notepad/pkg/adapters/fs"
	"github.com/aretw0/notepad/pkg/core"
)

// Runtime wires the note store to its file and logger.
type Runtime struct {
	Config     Config
	Logger     *slog.Logger
	Repository *fs.Repository
	Service    *core.Service
}

// New builds a Runtime.
//
//	rt, err := platform.New(platform.WithFile("notes.json"), platform.WithWatch(true))
func New(opts ...Option) (*Runtime, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	repo := fs.NewRepository(fs.Config{
		Path:   o.config.File,
		Logger: logger.With("component", "repository"),
	})

	model := core.NewModel()
	if o.newID != nil {
		model.WithIDs(o.newID)
	}
	service := core.NewService(repo, logger.With("component", "service")).WithModel(model)

	return &Runtime{
		Config:     o.config,
		Logger:     logger,
		Repository: repo,
		Service:    service,
	}, nil
}

// Start creates the event loop and, when configured, feeds it file change
// notifications. The caller runs the loop with Loop.Run.
func (r *Runtime) Start(ctx context.Context, render Renderer) (*Loop, error) {
	loop := NewLoop(r.Service, render, r.Config.BackgroundIO, r.Logger)

	if r.Config.Watch {
		changes, err := r.Repository.Watch(ctx)
		if err != nil {
			return nil, err
		}
		loop.Forward(ctx, changes)
	}

	return loop, nil
}

// Preview shows what importing the note document would change.
func (r *Runtime) Preview() (Preview, error) {
	return Diff(r.Repository, r.Service.Snapshot())
}
