package types

import "context"

// ViewService persists views. Implementations return the server's full
// representation on create and update; the store never invents a view
// locally. Delete returns ErrNotFound (possibly wrapped) when the view is
// already gone.
type ViewService interface {
	// FetchAll returns the current view set for a table, in server order.
	// Filters and sorts are embedded when the corresponding flag is set.
	FetchAll(ctx context.Context, tableID string, includeFilters, includeSorts bool) ([]*View, error)

	// Create persists a new view for the table and returns it with a
	// server-assigned identifier.
	Create(ctx context.Context, tableID string, values map[string]any) (*View, error)

	// Update applies values to the view and returns the updated resource.
	Update(ctx context.Context, viewID string, values map[string]any) (*View, error)

	// Delete removes the view and its filters and sorts.
	Delete(ctx context.Context, viewID string) error
}

// FilterService persists view filters. Same contract shape as ViewService,
// scoped to a parent view.
type FilterService interface {
	FetchAll(ctx context.Context, viewID string) ([]*Filter, error)
	Create(ctx context.Context, viewID string, values map[string]any) (*Filter, error)
	Update(ctx context.Context, filterID string, values map[string]any) (*Filter, error)
	Delete(ctx context.Context, filterID string) error
}

// SortService persists view sorts. Same contract shape as FilterService.
type SortService interface {
	FetchAll(ctx context.Context, viewID string) ([]*Sort, error)
	Create(ctx context.Context, viewID string, values map[string]any) (*Sort, error)
	Update(ctx context.Context, sortID string, values map[string]any) (*Sort, error)
	Delete(ctx context.Context, sortID string) error
}
