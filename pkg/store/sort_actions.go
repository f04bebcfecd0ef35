package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tablekit/viewsync/pkg/types"
)

// CreateSort optimistically appends a sort referencing field to the view
// and persists it. When values omits "order" the sort defaults to
// ascending. The field's type must be sortable.
//
// CreateSort does not enforce the one-sort-per-field invariant itself;
// callers toggling a direction are expected to find the existing sort via
// SortForField and call UpdateSort instead.
func (s *Store) CreateSort(ctx context.Context, view *types.View, field *types.Field, values map[string]any) (*types.Sort, error) {
	if ft, ok := s.reg.FieldType(field.Type); !ok || !ft.CanSortInView() {
		return nil, fmt.Errorf("%w: %s", types.ErrFieldNotSortable, field.Type)
	}
	order := types.SortOrderASC
	if v, ok := values["order"].(string); ok {
		order = v
	}
	if !types.ValidSortOrder(order) {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidSortOrder, order)
	}

	srt := &types.Sort{
		ID:      newPendingID(),
		ViewID:  view.ID,
		FieldID: field.ID,
		Order:   order,
		Loading: true,
	}
	s.mu.Lock()
	s.addSort(view, srt)
	s.mu.Unlock()

	created, err := s.sorts.Create(ctx, view.ID, map[string]any{
		"field": field.ID,
		"order": order,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.removeSort(view, srt)
		return nil, fmt.Errorf("create sort on view %s: %w", view.ID, err)
	}
	s.finalizeSort(srt, created)
	s.log.Debug("sort created",
		zap.String("view", view.ID),
		zap.String("sort", srt.ID),
		zap.String("order", srt.Order))
	return srt, nil
}

// UpdateSort optimistically applies the subset of values whose keys exist
// on the sort and issues the remote update. The loading flag toggles true
// at entry and false on both outcomes; on failure the saved prior values
// are re-applied before the error is returned.
func (s *Store) UpdateSort(ctx context.Context, srt *types.Sort, values map[string]any) error {
	if err := s.validateSortValues(srt, values); err != nil {
		return err
	}

	s.mu.Lock()
	s.setSortLoading(srt, true)
	old := s.updateSort(srt, values)
	seq := s.editSeq[srt.ID]
	s.mu.Unlock()

	_, err := s.sorts.Update(ctx, srt.ID, values)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if s.editSeq[srt.ID] == seq {
			s.applySortValues(srt, old)
			s.log.Warn("sort update rolled back", zap.String("sort", srt.ID))
		} else {
			s.log.Warn("discarding stale sort rollback", zap.String("sort", srt.ID))
		}
		s.setSortLoading(srt, false)
		return fmt.Errorf("update sort %s: %w", srt.ID, err)
	}
	s.setSortLoading(srt, false)
	return nil
}

// validateSortValues checks a new order value and, when the referenced
// field changes, that the new field's type is sortable.
func (s *Store) validateSortValues(srt *types.Sort, values map[string]any) error {
	if raw, ok := values["order"]; ok {
		order, ok := raw.(string)
		if !ok || !types.ValidSortOrder(order) {
			return fmt.Errorf("%w: %v", types.ErrInvalidSortOrder, raw)
		}
	}
	if raw, ok := values["field"]; ok {
		fieldID, ok := raw.(string)
		if !ok {
			return fmt.Errorf("%w: %v", types.ErrFieldNotFound, raw)
		}
		if s.fields == nil {
			return fmt.Errorf("%w: %s", types.ErrFieldNotFound, fieldID)
		}
		field, found := s.fields.FieldByID(fieldID)
		if !found {
			return fmt.Errorf("%w: %s", types.ErrFieldNotFound, fieldID)
		}
		if ft, found := s.reg.FieldType(field.Type); !found || !ft.CanSortInView() {
			return fmt.Errorf("%w: %s", types.ErrFieldNotSortable, field.Type)
		}
	}
	return nil
}

// DeleteSort removes the sort remotely, then locally. On failure the
// loading flag resets and the error is returned.
func (s *Store) DeleteSort(ctx context.Context, view *types.View, srt *types.Sort) error {
	s.mu.Lock()
	s.setSortLoading(srt, true)
	s.mu.Unlock()

	err := s.sorts.Delete(ctx, srt.ID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.setSortLoading(srt, false)
		return fmt.Errorf("delete sort %s: %w", srt.ID, err)
	}
	s.removeSort(view, srt)
	s.log.Debug("sort removed", zap.String("view", view.ID), zap.String("sort", srt.ID))
	return nil
}
