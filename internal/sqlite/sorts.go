package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tablekit/viewsync/pkg/types"
)

// Compile-time interface check: sortService must implement SortService.
var _ types.SortService = (*sortService)(nil)

// sortService implements the sort resource service over SQLite.
type sortService struct {
	backend *Backend
}

// FetchAll returns the sorts of a view in insertion order.
func (s *sortService) FetchAll(ctx context.Context, viewID string) ([]*types.Sort, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}
	return fetchSorts(ctx, db, viewID)
}

// Create persists a new sort for the view. The "field" value is required;
// "order" defaults to ascending and must be a recognized direction.
// Returns types.ErrNotFound when the parent view does not exist.
func (s *sortService) Create(ctx context.Context, viewID string, values map[string]any) (*types.Sort, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}
	if err := viewExists(ctx, db, viewID); err != nil {
		return nil, err
	}

	fieldID, ok := stringValue(values, "field")
	if !ok || fieldID == "" {
		return nil, errors.New("sort field is required")
	}
	order, ok := stringValue(values, "order")
	if !ok {
		order = types.SortOrderASC
	}
	if !types.ValidSortOrder(order) {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidSortOrder, order)
	}

	var seq int
	row := db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(seq), 0) + 1 FROM view_sorts WHERE view_id = ?", viewID)
	if err := row.Scan(&seq); err != nil {
		return nil, fmt.Errorf("computing sort seq: %w", err)
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO view_sorts (sort_id, view_id, field_id, sort_order, seq, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, viewID, fieldID, order, seq, nowString(),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting sort: %w", err)
	}

	return &types.Sort{
		ID:      id,
		ViewID:  viewID,
		FieldID: fieldID,
		Order:   order,
	}, nil
}

// Update applies values to an existing sort and returns the stored
// representation. Unknown keys are ignored.
// Returns types.ErrNotFound when no sort exists with the identifier.
func (s *sortService) Update(ctx context.Context, sortID string, values map[string]any) (*types.Sort, error) {
	db, err := s.backend.database()
	if err != nil {
		return nil, err
	}

	srt, err := getSort(ctx, db, sortID)
	if err != nil {
		return nil, err
	}

	if fieldID, ok := stringValue(values, "field"); ok {
		srt.FieldID = fieldID
	}
	if order, ok := stringValue(values, "order"); ok {
		if !types.ValidSortOrder(order) {
			return nil, fmt.Errorf("%w: %q", types.ErrInvalidSortOrder, order)
		}
		srt.Order = order
	}

	_, err = db.ExecContext(ctx,
		"UPDATE view_sorts SET field_id = ?, sort_order = ? WHERE sort_id = ?",
		srt.FieldID, srt.Order, sortID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating sort %s: %w", sortID, err)
	}
	return srt, nil
}

// Delete removes a sort.
// Returns types.ErrNotFound when no sort exists with the identifier.
func (s *sortService) Delete(ctx context.Context, sortID string) error {
	db, err := s.backend.database()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, "DELETE FROM view_sorts WHERE sort_id = ?", sortID)
	if err != nil {
		return fmt.Errorf("deleting sort %s: %w", sortID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting sort %s: %w", sortID, err)
	}
	if affected == 0 {
		return fmt.Errorf("sort %s: %w", sortID, types.ErrNotFound)
	}
	return nil
}

// fetchSorts loads the sorts of a view in insertion order.
func fetchSorts(ctx context.Context, db *sql.DB, viewID string) ([]*types.Sort, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT sort_id, view_id, field_id, sort_order
		 FROM view_sorts WHERE view_id = ? ORDER BY seq`, viewID)
	if err != nil {
		return nil, fmt.Errorf("querying sorts: %w", err)
	}
	defer rows.Close()

	sorts := []*types.Sort{}
	for rows.Next() {
		var srt types.Sort
		if err := rows.Scan(&srt.ID, &srt.ViewID, &srt.FieldID, &srt.Order); err != nil {
			return nil, fmt.Errorf("scanning sort: %w", err)
		}
		sorts = append(sorts, &srt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sorts: %w", err)
	}
	return sorts, nil
}

// getSort loads a single sort row.
func getSort(ctx context.Context, db *sql.DB, sortID string) (*types.Sort, error) {
	var srt types.Sort
	err := db.QueryRowContext(ctx,
		`SELECT sort_id, view_id, field_id, sort_order
		 FROM view_sorts WHERE sort_id = ?`, sortID).
		Scan(&srt.ID, &srt.ViewID, &srt.FieldID, &srt.Order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("sort %s: %w", sortID, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting sort %s: %w", sortID, err)
	}
	return &srt, nil
}
