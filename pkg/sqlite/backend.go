// Package sqlite provides the public API for the SQLite-backed resource
// services, keeping implementation details internal.
package sqlite

import (
	"github.com/tablekit/viewsync/internal/sqlite"
	"github.com/tablekit/viewsync/pkg/types"
)

// Backend hands out the SQLite-backed resource services.
type Backend interface {
	// Attach initializes the backend. Creates the DataDir if it does not
	// exist. Returns types.ErrAlreadyAttached while already attached.
	Attach(config types.Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, service operations return
	// types.ErrBackendDetached.
	Detach() error

	Views() types.ViewService
	Filters() types.FilterService
	Sorts() types.SortService
	Fields() types.FieldService
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".viewsync-db",
//	})
//	defer backend.Detach()
func NewBackend() Backend {
	return sqlite.NewBackend()
}
