package types

import "context"

// Field describes a table column. Fields are owned by a sibling store; the
// synchronization core references them by identifier only and receives
// lifecycle notifications (FieldUpdated, FieldDeleted) instead of mutating
// them directly.
type Field struct {
	ID      string
	TableID string
	Name    string
	Type    string
}

// FieldResolver resolves field identifiers against the sibling store that
// owns fields for the currently loaded table.
type FieldResolver interface {
	// FieldByID returns the field with the given identifier, or false when
	// it is not loaded.
	FieldByID(id string) (*Field, bool)
}

// FieldService is the sibling field lifecycle. UpdateType and Delete perform
// the authoritative cascade over persisted filters and sorts; the
// synchronization store catches up through its FieldUpdated and FieldDeleted
// notifications afterwards.
type FieldService interface {
	Create(ctx context.Context, tableID, name, typeKey string) (*Field, error)

	// Get returns ErrNotFound (possibly wrapped) when no field exists with
	// the identifier.
	Get(ctx context.Context, fieldID string) (*Field, error)

	FetchAll(ctx context.Context, tableID string) ([]*Field, error)

	// UpdateType changes the field's type, deleting persisted filters whose
	// variant is incompatible with the new type and, when the new type
	// cannot sort, every persisted sort on the field.
	UpdateType(ctx context.Context, catalog TypeCatalog, fieldID, typeKey string) (*Field, error)

	// Delete removes the field and every persisted filter and sort
	// referencing it.
	Delete(ctx context.Context, fieldID string) error

	// Resolver returns a FieldResolver over a snapshot of the table's
	// fields.
	Resolver(ctx context.Context, tableID string) (FieldResolver, error)
}
