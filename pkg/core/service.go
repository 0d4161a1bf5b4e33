package core

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// Operation names reported in OperationFailed.
const (
	OpImport = "import"
	OpExport = "export"
)

// Service owns the Model and resolves intents that need the Repository.
type Service struct {
	mu     sync.RWMutex
	repo   Repository
	model  *Model
	logger *slog.Logger
}

// NewService creates a new Service around an empty model.
// A nil logger discards output.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		repo:   repo,
		model:  NewModel(),
		logger: logger,
	}
}

// WithModel swaps the model the service operates on.
func (s *Service) WithModel(m *Model) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = m
	return s
}

// Dispatch resolves msg and applies the result before returning.
func (s *Service) Dispatch(ctx context.Context, msg Message) {
	switch msg.(type) {
	case ImportNotes:
		msg = s.Import(ctx)
	case ExportNotes:
		msg = s.Export(ctx, s.Snapshot())
	}
	s.Apply(msg)
}

// Apply runs the state transition for an already resolved message.
func (s *Service) Apply(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.Apply(msg)
	s.logger.Debug("applied message", "type", messageName(msg), "notes", len(s.model.Notes))
}

// Import loads the repository. It does not touch the model, so it may run
// off the owner goroutine; the result must be passed to Apply.
func (s *Service) Import(ctx context.Context) Message {
	if s.repo == nil {
		return OperationFailed{Op: OpImport, Err: ErrNoRepository}
	}
	notes, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("import failed", "error", err)
		return OperationFailed{Op: OpImport, Err: err}
	}
	s.logger.Info("imported notes", "count", len(notes))
	return NotesImported{Notes: notes}
}

// Export writes notes to the repository. Callers pass a snapshot taken on
// the owner goroutine.
func (s *Service) Export(ctx context.Context, notes Notes) Message {
	if s.repo == nil {
		return OperationFailed{Op: OpExport, Err: ErrNoRepository}
	}
	if err := s.repo.Store(ctx, notes); err != nil {
		s.logger.Warn("export failed", "error", err)
		return OperationFailed{Op: OpExport, Err: err}
	}
	s.logger.Info("exported notes", "count", len(notes))
	return NotesExported{}
}

// Snapshot returns a private copy of the current notes.
func (s *Service) Snapshot() Notes {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model.Notes.Clone()
}

// Model returns a copy of the current model.
func (s *Service) Model() Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := *s.model
	m.Notes = s.model.Notes.Clone()
	return m
}

// View renders the current model.
func (s *Service) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Render(s.model)
}

func messageName(msg Message) string {
	switch msg.(type) {
	case CreateNote:
		return "create"
	case SelectNote:
		return "select"
	case UpdateTitle:
		return "title"
	case UpdateContent:
		return "content"
	case ChangeColor:
		return "color"
	case NotesImported:
		return "imported"
	case NotesExported:
		return "exported"
	case OperationFailed:
		return "failed"
	case ClearError:
		return "dismiss"
	case FileChanged:
		return "file_changed"
	default:
		return "unknown"
	}
}
