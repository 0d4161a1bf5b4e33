package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/notepad/pkg/core"
)

// DefaultFile is the note document used when no path is configured.
const DefaultFile = "notes.json"

// Repository implements core.Repository on top of a single JSON document.
type Repository struct {
	Path   string
	config Config
	codec  Codec

	mu            sync.RWMutex
	digest        string
	lastSync      *time.Time
	watcherActive bool
}

// Config holds the configuration for the file repository.
type Config struct {
	Path   string      // defaults to DefaultFile
	Perm   os.FileMode // defaults to 0644
	Codec  Codec       // defaults to NewJSONCodec()
	Logger *slog.Logger
	// Debounce groups bursts of filesystem events. Defaults to 50ms.
	Debounce time.Duration
}

// NewRepository creates a new file-backed repository.
func NewRepository(config Config) *Repository {
	if config.Path == "" {
		config.Path = DefaultFile
	}
	if config.Perm == 0 {
		config.Perm = 0644
	}
	if config.Codec == nil {
		config.Codec = NewJSONCodec()
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	return &Repository{
		Path:   config.Path,
		config: config,
		codec:  config.Codec,
	}
}

// Load reads and decodes the whole document. Nothing is returned unless
// both steps succeed.
func (r *Repository) Load(ctx context.Context) (core.Notes, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.Path, err)
	}

	notes, err := r.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.Path, err)
	}

	r.remember(data)
	r.config.Logger.Debug("loaded note file", "path", r.Path, "notes", len(notes), "bytes", len(data))
	return notes, nil
}

// Store encodes notes and replaces the document on disk.
func (r *Repository) Store(ctx context.Context, notes core.Notes) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.codec.Encode(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}

	if err := writeFileAtomic(r.Path, data, r.config.Perm); err != nil {
		return err
	}

	r.remember(data)
	r.config.Logger.Debug("wrote note file", "path", r.Path, "notes", len(notes), "bytes", len(data))
	return nil
}

// ReadRaw returns the document bytes as they are on disk.
// A missing file yields empty content and no error.
func (r *Repository) ReadRaw() ([]byte, error) {
	data, err := os.ReadFile(r.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.Path, err)
	}
	return data, nil
}

// Encode exposes the repository's codec for previews.
func (r *Repository) Encode(notes core.Notes) ([]byte, error) {
	return r.codec.Encode(notes)
}

// remember records the digest of the document this process last saw, so the
// watcher can tell our own writes from foreign ones.
func (r *Repository) remember(data []byte) {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.digest = digest(data)
	r.lastSync = &now
}

// observe compares the on-disk document with the last known digest and
// records the new one. It reports whether the document changed.
func (r *Repository) observe() (bool, error) {
	data, err := r.ReadRaw()
	if err != nil {
		return false, err
	}
	d := ""
	if data != nil {
		d = digest(data)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if d == r.digest {
		return false, nil
	}
	r.digest = d
	return true, nil
}

func (r *Repository) absPath() (string, error) {
	abs, err := filepath.Abs(r.Path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", r.Path, err)
	}
	return abs, nil
}

func digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

var _ core.Repository = (*Repository)(nil)
