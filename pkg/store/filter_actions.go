package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tablekit/viewsync/pkg/types"
)

// CreateFilter optimistically appends a filter referencing field to the
// view and persists it. When values omits "type" the first registered
// filter variant compatible with the field's type is selected; when no
// variant is compatible the call fails without mutating state. An explicit
// "type" must name a registered variant compatible with the field.
//
// The appended filter carries a temporary identifier and loading=true. On
// confirmation the identifier is swapped for the server-assigned one, the
// loading flag clears, and the filter-created listeners are notified. On
// failure the filter is removed entirely.
func (s *Store) CreateFilter(ctx context.Context, view *types.View, field *types.Field, values map[string]any) (*types.Filter, error) {
	typeKey, err := s.resolveFilterTypeKey(field, values)
	if err != nil {
		return nil, err
	}
	value := ""
	if v, ok := values["value"].(string); ok {
		value = v
	}

	filter := &types.Filter{
		ID:      newPendingID(),
		ViewID:  view.ID,
		FieldID: field.ID,
		Type:    typeKey,
		Value:   value,
		Loading: true,
	}
	s.mu.Lock()
	s.addFilter(view, filter)
	s.mu.Unlock()

	created, err := s.filters.Create(ctx, view.ID, map[string]any{
		"field": field.ID,
		"type":  typeKey,
		"value": value,
	})

	s.mu.Lock()
	if err != nil {
		s.removeFilter(view, filter)
		s.mu.Unlock()
		return nil, fmt.Errorf("create filter on view %s: %w", view.ID, err)
	}
	s.finalizeFilter(filter, created)
	s.mu.Unlock()

	s.log.Debug("filter created",
		zap.String("view", view.ID),
		zap.String("filter", filter.ID),
		zap.String("type", filter.Type))
	s.notifyFilterCreated(view, filter)
	return filter, nil
}

// resolveFilterTypeKey determines the filter variant for a new filter:
// the explicit "type" value when present (validated against the registry
// and the field's type), the first compatible variant otherwise.
func (s *Store) resolveFilterTypeKey(field *types.Field, values map[string]any) (string, error) {
	if raw, ok := values["type"]; ok {
		key, ok := raw.(string)
		if !ok {
			return "", fmt.Errorf("%w: %v", types.ErrUnknownFilterType, raw)
		}
		ft, err := s.reg.FilterType(key)
		if err != nil {
			return "", err
		}
		if !types.FilterTypeCompatible(ft, field.Type) {
			return "", fmt.Errorf("%w: %s on %s", types.ErrIncompatibleFilterType, key, field.Type)
		}
		return key, nil
	}
	ft, ok := s.reg.FirstCompatibleFilterType(field.Type)
	if !ok {
		return "", fmt.Errorf("%w: %s", types.ErrNoCompatibleFilterType, field.Type)
	}
	return ft.Type(), nil
}

// UpdateFilter optimistically applies the subset of values whose keys exist
// on the filter and issues the remote update. The loading flag toggles true
// at entry and false on both outcomes; on failure the saved prior values
// are re-applied before the error is returned.
//
// Changing the "type" or "field" attribute is validated locally first: the
// final (field, type) pairing must resolve against the registry as
// compatible.
func (s *Store) UpdateFilter(ctx context.Context, filter *types.Filter, values map[string]any) error {
	if err := s.validateFilterValues(filter, values); err != nil {
		return err
	}

	s.mu.Lock()
	s.setFilterLoading(filter, true)
	old := s.updateFilter(filter, values)
	seq := s.editSeq[filter.ID]
	s.mu.Unlock()

	_, err := s.filters.Update(ctx, filter.ID, values)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if s.editSeq[filter.ID] == seq {
			s.applyFilterValues(filter, old)
			s.log.Warn("filter update rolled back", zap.String("filter", filter.ID))
		} else {
			s.log.Warn("discarding stale filter rollback", zap.String("filter", filter.ID))
		}
		s.setFilterLoading(filter, false)
		return fmt.Errorf("update filter %s: %w", filter.ID, err)
	}
	s.setFilterLoading(filter, false)
	return nil
}

// validateFilterValues checks that the filter's final field/type pairing
// stays compatible when values touches either attribute.
func (s *Store) validateFilterValues(filter *types.Filter, values map[string]any) error {
	_, hasType := values["type"]
	_, hasField := values["field"]
	if !hasType && !hasField {
		return nil
	}

	fieldID := filter.FieldID
	if v, ok := values["field"].(string); ok {
		fieldID = v
	}
	typeKey := filter.Type
	if v, ok := values["type"].(string); ok {
		typeKey = v
	}

	if s.fields == nil {
		return fmt.Errorf("%w: %s", types.ErrFieldNotFound, fieldID)
	}
	field, ok := s.fields.FieldByID(fieldID)
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrFieldNotFound, fieldID)
	}
	ft, err := s.reg.FilterType(typeKey)
	if err != nil {
		return err
	}
	if !types.FilterTypeCompatible(ft, field.Type) {
		return fmt.Errorf("%w: %s on %s", types.ErrIncompatibleFilterType, typeKey, field.Type)
	}
	return nil
}

// DeleteFilter removes the filter remotely, then locally. On failure the
// loading flag resets and the error is returned; there is no
// idempotent-delete collapse here, unlike view deletion.
func (s *Store) DeleteFilter(ctx context.Context, view *types.View, filter *types.Filter) error {
	s.mu.Lock()
	s.setFilterLoading(filter, true)
	s.mu.Unlock()

	err := s.filters.Delete(ctx, filter.ID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.setFilterLoading(filter, false)
		return fmt.Errorf("delete filter %s: %w", filter.ID, err)
	}
	s.removeFilter(view, filter)
	s.log.Debug("filter removed", zap.String("view", view.ID), zap.String("filter", filter.ID))
	return nil
}
