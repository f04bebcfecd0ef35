package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tablekit/viewsync/pkg/types"
)

// Compile-time interface check: viewService must implement ViewService.
var _ types.ViewService = (*viewService)(nil)

// viewService implements the view resource service over SQLite.
type viewService struct {
	backend *Backend
}

// FetchAll returns the views of a table ordered by ordinal, optionally with
// filters and sorts embedded.
func (s *viewService) FetchAll(ctx context.Context, tableID string, includeFilters, includeSorts bool) ([]*types.View, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT view_id, table_id, type, name, ordinal, filters_disabled
		 FROM views WHERE table_id = ? ORDER BY ordinal, created_at`,
		tableID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying views: %w", err)
	}
	defer rows.Close()

	var views []*types.View
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating views: %w", err)
	}

	for _, view := range views {
		if includeFilters {
			filters, err := fetchFilters(ctx, db, view.ID)
			if err != nil {
				return nil, err
			}
			view.Filters = filters
		}
		if includeSorts {
			sorts, err := fetchSorts(ctx, db, view.ID)
			if err != nil {
				return nil, err
			}
			view.Sorts = sorts
		}
	}
	return views, nil
}

// Create persists a new view. The "type" value is required; "name",
// "order", and "filters_disabled" are optional. A missing order places the
// view after the table's existing views.
func (s *viewService) Create(ctx context.Context, tableID string, values map[string]any) (*types.View, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}

	typeKey, ok := stringValue(values, "type")
	if !ok || typeKey == "" {
		return nil, errors.New("view type is required")
	}
	name, _ := stringValue(values, "name")
	filtersDisabled, _ := boolValue(values, "filters_disabled")

	ordinal, ok := intValue(values, "order")
	if !ok {
		row := db.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(ordinal), 0) + 1 FROM views WHERE table_id = ?", tableID)
		if err := row.Scan(&ordinal); err != nil {
			return nil, fmt.Errorf("computing view ordinal: %w", err)
		}
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}
	now := nowString()
	_, err = db.ExecContext(ctx,
		`INSERT INTO views (view_id, table_id, type, name, ordinal, filters_disabled, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, tableID, typeKey, name, ordinal, boolToInt(filtersDisabled), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting view: %w", err)
	}

	return &types.View{
		ID:              id,
		TableID:         tableID,
		Type:            typeKey,
		Name:            name,
		Order:           ordinal,
		FiltersDisabled: filtersDisabled,
		Filters:         []*types.Filter{},
		Sorts:           []*types.Sort{},
	}, nil
}

// Update applies values to an existing view and returns the stored
// representation. Unknown keys are ignored; the type is immutable.
// Returns types.ErrNotFound when no view exists with the identifier.
func (s *viewService) Update(ctx context.Context, viewID string, values map[string]any) (*types.View, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}

	view, err := getView(ctx, db, viewID)
	if err != nil {
		return nil, err
	}

	if name, ok := stringValue(values, "name"); ok {
		view.Name = name
	}
	if ordinal, ok := intValue(values, "order"); ok {
		view.Order = ordinal
	}
	if disabled, ok := boolValue(values, "filters_disabled"); ok {
		view.FiltersDisabled = disabled
	}

	_, err = db.ExecContext(ctx,
		`UPDATE views SET name = ?, ordinal = ?, filters_disabled = ?, updated_at = ?
		 WHERE view_id = ?`,
		view.Name, view.Order, boolToInt(view.FiltersDisabled), nowString(), viewID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating view %s: %w", viewID, err)
	}
	return view, nil
}

// Delete removes a view and its filters and sorts.
// Returns types.ErrNotFound when no view exists with the identifier.
func (s *viewService) Delete(ctx context.Context, viewID string) error {
	db, err := s.backend.database()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM views WHERE view_id = ?", viewID)
	if err != nil {
		return fmt.Errorf("deleting view %s: %w", viewID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting view %s: %w", viewID, err)
	}
	if affected == 0 {
		return fmt.Errorf("view %s: %w", viewID, types.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM view_filters WHERE view_id = ?", viewID); err != nil {
		return fmt.Errorf("deleting view filters: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM view_sorts WHERE view_id = ?", viewID); err != nil {
		return fmt.Errorf("deleting view sorts: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing view delete: %w", err)
	}
	return nil
}

// getView loads a single view row.
func getView(ctx context.Context, db *sql.DB, viewID string) (*types.View, error) {
	row := db.QueryRowContext(ctx,
		`SELECT view_id, table_id, type, name, ordinal, filters_disabled
		 FROM views WHERE view_id = ?`, viewID)
	view, err := scanView(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("view %s: %w", viewID, types.ErrNotFound)
		}
		return nil, err
	}
	return view, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanView hydrates a view row.
func scanView(row rowScanner) (*types.View, error) {
	var view types.View
	var filtersDisabled int
	err := row.Scan(&view.ID, &view.TableID, &view.Type, &view.Name, &view.Order, &filtersDisabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning view: %w", err)
	}
	view.FiltersDisabled = filtersDisabled != 0
	view.Filters = []*types.Filter{}
	view.Sorts = []*types.Sort{}
	return &view, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
