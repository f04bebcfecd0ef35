// Package registry implements the type registry for view, filter, and field
// variants. Variants are plain descriptors keyed by a string tag and
// resolved at runtime, so the synchronization core never depends on
// concrete variants.
package registry

import (
	"errors"
	"fmt"

	"github.com/tablekit/viewsync/pkg/types"
)

// Registry categories.
const (
	CategoryView   = "view"
	CategoryFilter = "filter"
	CategoryField  = "field"
)

// Registry errors.
var (
	ErrUnknownCategory = errors.New("unknown registry category")
	ErrDuplicateType   = errors.New("type already registered")
)

// Registry holds the registered view, filter, and field type descriptors.
// Filter types additionally keep registration order: automatic filter-type
// selection picks the first compatible variant.
//
// Registration happens during setup; lookups afterwards are read-only, so
// the registry carries no locking.
type Registry struct {
	viewTypes   map[string]types.ViewType
	filterTypes map[string]types.FilterType
	fieldTypes  map[string]types.FieldType
	filterOrder []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		viewTypes:   make(map[string]types.ViewType),
		filterTypes: make(map[string]types.FilterType),
		fieldTypes:  make(map[string]types.FieldType),
	}
}

// RegisterViewType adds a view variant. Returns ErrDuplicateType if the key
// is already taken.
func (r *Registry) RegisterViewType(vt types.ViewType) error {
	if _, ok := r.viewTypes[vt.Type()]; ok {
		return fmt.Errorf("%w: view %q", ErrDuplicateType, vt.Type())
	}
	r.viewTypes[vt.Type()] = vt
	return nil
}

// RegisterFilterType adds a filter variant. Registration order is preserved
// for automatic selection.
func (r *Registry) RegisterFilterType(ft types.FilterType) error {
	if _, ok := r.filterTypes[ft.Type()]; ok {
		return fmt.Errorf("%w: filter %q", ErrDuplicateType, ft.Type())
	}
	r.filterTypes[ft.Type()] = ft
	r.filterOrder = append(r.filterOrder, ft.Type())
	return nil
}

// RegisterFieldType adds a field variant.
func (r *Registry) RegisterFieldType(ft types.FieldType) error {
	if _, ok := r.fieldTypes[ft.Type()]; ok {
		return fmt.Errorf("%w: field %q", ErrDuplicateType, ft.Type())
	}
	r.fieldTypes[ft.Type()] = ft
	return nil
}

// ViewType returns the view variant for key.
// Returns types.ErrUnknownViewType if no such variant is registered.
func (r *Registry) ViewType(key string) (types.ViewType, error) {
	vt, ok := r.viewTypes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownViewType, key)
	}
	return vt, nil
}

// FilterType returns the filter variant for key.
// Returns types.ErrUnknownFilterType if no such variant is registered.
func (r *Registry) FilterType(key string) (types.FilterType, error) {
	ft, ok := r.filterTypes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownFilterType, key)
	}
	return ft, nil
}

// FieldType returns the field variant for key, or false.
func (r *Registry) FieldType(key string) (types.FieldType, bool) {
	ft, ok := r.fieldTypes[key]
	return ft, ok
}

// FilterTypes returns all filter variants in registration order.
func (r *Registry) FilterTypes() []types.FilterType {
	out := make([]types.FilterType, 0, len(r.filterOrder))
	for _, key := range r.filterOrder {
		out = append(out, r.filterTypes[key])
	}
	return out
}

// FirstCompatibleFilterType returns the first registered filter variant
// whose compatible field types include fieldType, or false when none does.
func (r *Registry) FirstCompatibleFilterType(fieldType string) (types.FilterType, bool) {
	for _, key := range r.filterOrder {
		ft := r.filterTypes[key]
		if types.FilterTypeCompatible(ft, fieldType) {
			return ft, true
		}
	}
	return nil, false
}

// Get returns the descriptor registered under category and key.
// Returns ErrUnknownCategory for an unrecognized category and the matching
// unknown-type error when the key does not resolve.
func (r *Registry) Get(category, key string) (any, error) {
	switch category {
	case CategoryView:
		return r.ViewType(key)
	case CategoryFilter:
		return r.FilterType(key)
	case CategoryField:
		ft, ok := r.fieldTypes[key]
		if !ok {
			return nil, fmt.Errorf("unknown field type: %q", key)
		}
		return ft, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
}

// GetAll returns all descriptors registered under category, keyed by type.
func (r *Registry) GetAll(category string) (map[string]any, error) {
	out := make(map[string]any)
	switch category {
	case CategoryView:
		for k, v := range r.viewTypes {
			out[k] = v
		}
	case CategoryFilter:
		for k, v := range r.filterTypes {
			out[k] = v
		}
	case CategoryField:
		for k, v := range r.fieldTypes {
			out[k] = v
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return out, nil
}

// Exists reports whether a descriptor is registered under category and key.
func (r *Registry) Exists(category, key string) bool {
	switch category {
	case CategoryView:
		_, ok := r.viewTypes[key]
		return ok
	case CategoryFilter:
		_, ok := r.filterTypes[key]
		return ok
	case CategoryField:
		_, ok := r.fieldTypes[key]
		return ok
	}
	return false
}
