package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tablekit/viewsync/pkg/types"
)

// Compile-time interface check: filterService must implement FilterService.
var _ types.FilterService = (*filterService)(nil)

// filterService implements the filter resource service over SQLite.
type filterService struct {
	backend *Backend
}

// FetchAll returns the filters of a view in insertion order.
func (s *filterService) FetchAll(ctx context.Context, viewID string) ([]*types.Filter, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}
	return fetchFilters(ctx, db, viewID)
}

// Create persists a new filter for the view. The "field" and "type" values
// are required; "value" defaults to the empty string.
// Returns types.ErrNotFound when the parent view does not exist.
func (s *filterService) Create(ctx context.Context, viewID string, values map[string]any) (*types.Filter, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}
	if err := viewExists(ctx, db, viewID); err != nil {
		return nil, err
	}

	fieldID, ok := stringValue(values, "field")
	if !ok || fieldID == "" {
		return nil, errors.New("filter field is required")
	}
	typeKey, ok := stringValue(values, "type")
	if !ok || typeKey == "" {
		return nil, errors.New("filter type is required")
	}
	value, _ := stringValue(values, "value")

	var seq int
	row := db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(seq), 0) + 1 FROM view_filters WHERE view_id = ?", viewID)
	if err := row.Scan(&seq); err != nil {
		return nil, fmt.Errorf("computing filter seq: %w", err)
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO view_filters (filter_id, view_id, field_id, type, value, seq, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, viewID, fieldID, typeKey, value, seq, nowString(),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting filter: %w", err)
	}

	return &types.Filter{
		ID:      id,
		ViewID:  viewID,
		FieldID: fieldID,
		Type:    typeKey,
		Value:   value,
	}, nil
}

// Update applies values to an existing filter and returns the stored
// representation. Unknown keys are ignored.
// Returns types.ErrNotFound when no filter exists with the identifier.
func (s *filterService) Update(ctx context.Context, filterID string, values map[string]any) (*types.Filter, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}

	filter, err := getFilter(ctx, db, filterID)
	if err != nil {
		return nil, err
	}

	if fieldID, ok := stringValue(values, "field"); ok {
		filter.FieldID = fieldID
	}
	if typeKey, ok := stringValue(values, "type"); ok {
		filter.Type = typeKey
	}
	if value, ok := stringValue(values, "value"); ok {
		filter.Value = value
	}

	_, err = db.ExecContext(ctx,
		"UPDATE view_filters SET field_id = ?, type = ?, value = ? WHERE filter_id = ?",
		filter.FieldID, filter.Type, filter.Value, filterID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating filter %s: %w", filterID, err)
	}
	return filter, nil
}

// Delete removes a filter.
// Returns types.ErrNotFound when no filter exists with the identifier.
func (s *filterService) Delete(ctx context.Context, filterID string) error {
	db, err := s.backend.database()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, "DELETE FROM view_filters WHERE filter_id = ?", filterID)
	if err != nil {
		return fmt.Errorf("deleting filter %s: %w", filterID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting filter %s: %w", filterID, err)
	}
	if affected == 0 {
		return fmt.Errorf("filter %s: %w", filterID, types.ErrNotFound)
	}
	return nil
}

// fetchFilters loads the filters of a view in insertion order.
func fetchFilters(ctx context.Context, db *sql.DB, viewID string) ([]*types.Filter, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT filter_id, view_id, field_id, type, value
		 FROM view_filters WHERE view_id = ? ORDER BY seq`, viewID)
	if err != nil {
		return nil, fmt.Errorf("querying filters: %w", err)
	}
	defer rows.Close()

	filters := []*types.Filter{}
	for rows.Next() {
		var f types.Filter
		if err := rows.Scan(&f.ID, &f.ViewID, &f.FieldID, &f.Type, &f.Value); err != nil {
			return nil, fmt.Errorf("scanning filter: %w", err)
		}
		filters = append(filters, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating filters: %w", err)
	}
	return filters, nil
}

// getFilter loads a single filter row.
func getFilter(ctx context.Context, db *sql.DB, filterID string) (*types.Filter, error) {
	var f types.Filter
	err := db.QueryRowContext(ctx,
		`SELECT filter_id, view_id, field_id, type, value
		 FROM view_filters WHERE filter_id = ?`, filterID).
		Scan(&f.ID, &f.ViewID, &f.FieldID, &f.Type, &f.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("filter %s: %w", filterID, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting filter %s: %w", filterID, err)
	}
	return &f, nil
}

// viewExists checks that the parent view is present.
func viewExists(ctx context.Context, db *sql.DB, viewID string) error {
	var one int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM views WHERE view_id = ?", viewID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("view %s: %w", viewID, types.ErrNotFound)
		}
		return fmt.Errorf("checking view existence: %w", err)
	}
	return nil
}
