package core

import "context"

// Repository defines the contract for persisting the whole note collection.
// Adhering to this interface keeps the core independent of the storage
// mechanism (a JSON file by default).
type Repository interface {
	// Load reads and decodes the full collection. On error the returned
	// collection must be ignored.
	Load(ctx context.Context) (Notes, error)

	// Store replaces the persisted collection with notes.
	Store(ctx context.Context, notes Notes) error
}
