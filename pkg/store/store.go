// Package store implements the view synchronization store: an in-memory
// mirror of a table's views, filters, and sort rules kept consistent with a
// remote resource service through optimistic local mutation, server
// confirmation or rollback, and cascading invalidation when referenced
// fields change.
//
// All state transitions funnel through the mutation primitives in
// mutations.go; the exported actions compose remote calls and the rollback
// decision on top. Between issuing a remote call and its resolution the
// optimistic local state is visible to all readers. That window is
// intentional: responsiveness is prioritized over strict read-after-write
// consistency with the server.
package store

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/tablekit/viewsync/pkg/registry"
	"github.com/tablekit/viewsync/pkg/types"
)

// Store configuration errors.
var (
	ErrMissingService  = errors.New("view, filter, and sort services are required")
	ErrMissingRegistry = errors.New("type registry is required")
)

// Config wires a Store to its collaborators. Views, Filters, Sorts, and
// Registry are required. Fields is required for filter and sort creation;
// Applications may be nil, in which case deleting the selected view always
// yields the default landing target. A nil Logger disables logging.
type Config struct {
	Views        types.ViewService
	Filters      types.FilterService
	Sorts        types.SortService
	Registry     *registry.Registry
	Fields       types.FieldResolver
	Applications types.ApplicationResolver
	Logger       *zap.Logger
}

// Store owns the views, filters, and sorts of the currently selected table.
// Its lifecycle is tied to table selection: FetchAll replaces the whole
// view set, and everything is discarded wholesale on the next FetchAll.
//
// The mutex guards items, selected, the lifecycle flags, and the edit
// sequence counters. Remote calls are made with the mutex released.
type Store struct {
	views   types.ViewService
	filters types.FilterService
	sorts   types.SortService
	reg     *registry.Registry
	fields  types.FieldResolver
	apps    types.ApplicationResolver
	log     *zap.Logger

	mu       sync.Mutex
	items    []*types.View
	selected *types.View
	loading  bool
	loaded   bool

	// editSeq tracks a monotonic edit counter per entity identifier. A
	// rollback is discarded when a newer local edit landed after the failed
	// request applied its optimistic values, so a late failure cannot
	// clobber the newer edit's result.
	editSeq map[string]uint64

	filterCreated []func(view *types.View, filter *types.Filter)
}

// New creates a Store from the given configuration.
func New(cfg Config) (*Store, error) {
	if cfg.Views == nil || cfg.Filters == nil || cfg.Sorts == nil {
		return nil, ErrMissingService
	}
	if cfg.Registry == nil {
		return nil, ErrMissingRegistry
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		views:   cfg.Views,
		filters: cfg.Filters,
		sorts:   cfg.Sorts,
		reg:     cfg.Registry,
		fields:  cfg.Fields,
		apps:    cfg.Applications,
		log:     log,
		editSeq: make(map[string]uint64),
	}, nil
}

// Items returns the views of the currently loaded table in server order.
// The returned slice is a copy; the views it points at are live and must
// only be mutated through store actions.
func (s *Store) Items() []*types.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.View, len(s.items))
	copy(out, s.items)
	return out
}

// Selected returns the currently selected view, or nil.
func (s *Store) Selected() *types.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Loading reports whether a bulk fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Loaded reports whether a bulk fetch has completed for the current table.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// ViewByID returns the view with the given identifier, or false.
func (s *Store) ViewByID(id string) (*types.View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.itemByID(id)
	return v, v != nil
}

// SortForField returns the sort on view referencing fieldID, or nil.
// Callers toggling a sort direction are expected to use this and call
// UpdateSort instead of CreateSort when a sort already exists, keeping at
// most one sort per (view, field) pair.
func (s *Store) SortForField(view *types.View, fieldID string) *types.Sort {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, srt := range view.Sorts {
		if srt.FieldID == fieldID {
			return srt
		}
	}
	return nil
}

// itemByID returns the live view with the given identifier. Callers must
// hold the mutex.
func (s *Store) itemByID(id string) *types.View {
	for _, v := range s.items {
		if v.ID == id {
			return v
		}
	}
	return nil
}
