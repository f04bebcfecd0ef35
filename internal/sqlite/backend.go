// Package sqlite implements the view, filter, and sort resource services on
// top of a local SQLite database. It is the in-repo stand-in for the remote
// persistence layer: the same contracts can be satisfied by any transport.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/tablekit/viewsync/pkg/types"
)

// databaseFile is the SQLite file created inside the data directory.
const databaseFile = "viewsync.db"

// Backend owns the SQLite database and hands out the resource services.
// The backend is not attached on creation; call Attach with a Config.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a detached SQLite backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist and applies the schema. Returns
// types.ErrAlreadyAttached if called while already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, databaseFile))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach releases the database. Idempotent: multiple calls succeed.
// After Detach, service operations return types.ErrBackendDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.attached = false
	if err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// Views returns the view resource service.
func (b *Backend) Views() types.ViewService {
	return &viewService{backend: b}
}

// Filters returns the filter resource service.
func (b *Backend) Filters() types.FilterService {
	return &filterService{backend: b}
}

// Sorts returns the sort resource service.
func (b *Backend) Sorts() types.SortService {
	return &sortService{backend: b}
}

// Fields returns the field resource service.
func (b *Backend) Fields() types.FieldService {
	return &FieldStore{backend: b}
}

// database returns the open handle, or types.ErrBackendDetached.
func (b *Backend) database() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrBackendDetached
	}
	return b.db, nil
}
