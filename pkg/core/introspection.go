package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Notes          int    `json:"notes"`
	Selected       string `json:"selected,omitempty"`
	SelectionFound bool   `json:"selection_found"`
	Error          string `json:"error,omitempty"`
	Stale          bool   `json:"stale"`
	RepositoryType string `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "none"
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	_, found := s.model.Current()
	return ServiceState{
		Notes:          len(s.model.Notes),
		Selected:       s.model.Selected.ID,
		SelectionFound: found,
		Error:          s.model.Err,
		Stale:          s.model.Stale,
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
