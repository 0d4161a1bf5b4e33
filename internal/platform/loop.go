package platform

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notepad/pkg/core"
)

// Renderer draws a view. It is called on the loop goroutine after every
// applied message.
type Renderer func(core.View)

type envelope struct {
	msg  core.Message
	done chan struct{}
}

// Loop is the single owner of the note store. Messages are applied one at a
// time, in arrival order; import and export resolve through the repository
// either inline or, with background I/O, on a tracked goroutine whose result
// is posted back to the loop.
type Loop struct {
	service    *core.Service
	render     Renderer
	background bool
	logger     *slog.Logger
	inbox      chan envelope
}

// NewLoop creates a loop around service. render may be nil.
func NewLoop(service *core.Service, render Renderer, background bool, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loop{
		service:    service,
		render:     render,
		background: background,
		logger:     logger,
		inbox:      make(chan envelope, 16),
	}
}

// Send queues msg. The returned channel closes once msg, and for import or
// export its result, has been applied and rendered. If ctx ends before the
// loop accepts msg, the channel is closed immediately.
func (l *Loop) Send(ctx context.Context, msg core.Message) <-chan struct{} {
	done := make(chan struct{})
	select {
	case l.inbox <- envelope{msg: msg, done: done}:
	case <-ctx.Done():
		close(done)
	}
	return done
}

// Dispatch sends msg and waits for it to be applied.
func (l *Loop) Dispatch(ctx context.Context, msg core.Message) error {
	select {
	case <-l.Send(ctx, msg):
		return ctx.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Forward relays file change notifications into the loop until src closes.
func (l *Loop) Forward(ctx context.Context, src <-chan core.FileChanged) {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-src:
				if !ok {
					return nil
				}
				l.logger.Info("note file changed on disk", "path", ev.Path)
				l.Send(ctx, ev)
			}
		}
	})
}

// Run processes messages until ctx ends. It renders the initial view first.
func (l *Loop) Run(ctx context.Context) error {
	l.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case env := <-l.inbox:
			l.handle(ctx, env)
		}
	}
}

func (l *Loop) handle(ctx context.Context, env envelope) {
	switch env.msg.(type) {
	case core.ImportNotes:
		l.resolve(ctx, env, func(ctx context.Context) core.Message {
			return l.service.Import(ctx)
		})
	case core.ExportNotes:
		snapshot := l.service.Snapshot()
		l.resolve(ctx, env, func(ctx context.Context) core.Message {
			return l.service.Export(ctx, snapshot)
		})
	default:
		l.apply(env)
	}
}

func (l *Loop) resolve(ctx context.Context, env envelope, fn func(context.Context) core.Message) {
	if !l.background {
		l.apply(envelope{msg: fn(ctx), done: env.done})
		return
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		result := fn(ctx)
		select {
		case l.inbox <- envelope{msg: result, done: env.done}:
		case <-ctx.Done():
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		l.logger.Error("background io failed", "error", err)
	}))
}

func (l *Loop) apply(env envelope) {
	l.service.Apply(env.msg)
	l.draw()
	if env.done != nil {
		close(env.done)
	}
}

func (l *Loop) draw() {
	if l.render != nil {
		l.render(l.service.View())
	}
}
