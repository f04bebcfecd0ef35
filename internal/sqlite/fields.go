package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tablekit/viewsync/pkg/types"
)

// Compile-time interface check: FieldStore must implement FieldService.
var _ types.FieldService = (*FieldStore)(nil)

// FieldStore persists fields. Fields are owned by the sibling field
// lifecycle, not by the synchronization store; this accessor exists so the
// CLI can play that sibling role: it performs the authoritative cascades
// the store later catches up with through FieldUpdated and FieldDeleted.
type FieldStore struct {
	backend *Backend
}

// Create persists a new field.
func (s *FieldStore) Create(ctx context.Context, tableID, name, typeKey string) (*types.Field, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}
	_, err = db.ExecContext(ctx,
		"INSERT INTO fields (field_id, table_id, name, type, created_at) VALUES (?, ?, ?, ?, ?)",
		id, tableID, name, typeKey, nowString(),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting field: %w", err)
	}
	return &types.Field{ID: id, TableID: tableID, Name: name, Type: typeKey}, nil
}

// Get returns a field by identifier.
// Returns types.ErrNotFound when no field exists with the identifier.
func (s *FieldStore) Get(ctx context.Context, fieldID string) (*types.Field, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}
	var f types.Field
	err = db.QueryRowContext(ctx,
		"SELECT field_id, table_id, name, type FROM fields WHERE field_id = ?", fieldID).
		Scan(&f.ID, &f.TableID, &f.Name, &f.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("field %s: %w", fieldID, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting field %s: %w", fieldID, err)
	}
	return &f, nil
}

// FetchAll returns the fields of a table in creation order.
func (s *FieldStore) FetchAll(ctx context.Context, tableID string) ([]*types.Field, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		"SELECT field_id, table_id, name, type FROM fields WHERE table_id = ? ORDER BY created_at", tableID)
	if err != nil {
		return nil, fmt.Errorf("querying fields: %w", err)
	}
	defer rows.Close()

	fields := []*types.Field{}
	for rows.Next() {
		var f types.Field
		if err := rows.Scan(&f.ID, &f.TableID, &f.Name, &f.Type); err != nil {
			return nil, fmt.Errorf("scanning field: %w", err)
		}
		fields = append(fields, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fields: %w", err)
	}
	return fields, nil
}

// UpdateType changes a field's type and performs the authoritative cascade:
// filters whose variant is incompatible with the new type are deleted, and
// when the new type cannot sort, every sort on the field goes too. Returns
// the updated field.
func (s *FieldStore) UpdateType(ctx context.Context, catalog types.TypeCatalog, fieldID, typeKey string) (*types.Field, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}
	field, err := s.Get(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx,
		"UPDATE fields SET type = ? WHERE field_id = ?", typeKey, fieldID); err != nil {
		return nil, fmt.Errorf("updating field %s: %w", fieldID, err)
	}
	field.Type = typeKey

	// Remove filters whose variant no longer accepts the new type.
	for _, ft := range catalog.FilterTypes() {
		if types.FilterTypeCompatible(ft, typeKey) {
			continue
		}
		if _, err := db.ExecContext(ctx,
			"DELETE FROM view_filters WHERE field_id = ? AND type = ?", fieldID, ft.Type()); err != nil {
			return nil, fmt.Errorf("cascading filter delete: %w", err)
		}
	}

	if ft, ok := catalog.FieldType(typeKey); !ok || !ft.CanSortInView() {
		if _, err := db.ExecContext(ctx,
			"DELETE FROM view_sorts WHERE field_id = ?", fieldID); err != nil {
			return nil, fmt.Errorf("cascading sort delete: %w", err)
		}
	}
	return field, nil
}

// Delete removes a field and every filter and sort referencing it.
// Returns types.ErrNotFound when no field exists with the identifier.
func (s *FieldStore) Delete(ctx context.Context, fieldID string) error {
	db, err := s.backend.database()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM fields WHERE field_id = ?", fieldID)
	if err != nil {
		return fmt.Errorf("deleting field %s: %w", fieldID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting field %s: %w", fieldID, err)
	}
	if affected == 0 {
		return fmt.Errorf("field %s: %w", fieldID, types.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM view_filters WHERE field_id = ?", fieldID); err != nil {
		return fmt.Errorf("cascading filter delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM view_sorts WHERE field_id = ?", fieldID); err != nil {
		return fmt.Errorf("cascading sort delete: %w", err)
	}
	return tx.Commit()
}

// Resolver loads the fields of a table and returns a FieldResolver over
// the snapshot.
func (s *FieldStore) Resolver(ctx context.Context, tableID string) (types.FieldResolver, error) {
	fields, err := s.FetchAll(ctx, tableID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*types.Field, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}
	return staticResolver(byID), nil
}

// staticResolver resolves fields against a fixed snapshot.
type staticResolver map[string]*types.Field

func (r staticResolver) FieldByID(id string) (*types.Field, bool) {
	f, ok := r[id]
	return f, ok
}
