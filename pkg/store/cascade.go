package store

import (
	"go.uber.org/zap"

	"github.com/tablekit/viewsync/pkg/types"
)

// Cascading invalidation. Both entry points are inbound notifications from
// the field lifecycle owner: the backend has already performed the
// authoritative cascade and these edits are the client catching up. They
// are local-only, need no rollback, and re-applying them is safe.

// FieldUpdated removes, across every loaded view, each filter referencing
// the field whose filter variant no longer lists the field's new type among
// its compatible field types. A filter that is no longer semantically valid
// for the new type cannot be repaired, so it is discarded rather than
// migrated. When the new type cannot participate in sorting at all, every
// sort referencing the field goes too.
func (s *Store) FieldUpdated(field *types.Field, fieldType types.FieldType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, view := range s.items {
		for _, filter := range append([]*types.Filter(nil), view.Filters...) {
			if filter.FieldID != field.ID {
				continue
			}
			ft, err := s.reg.FilterType(filter.Type)
			if err != nil || !types.FilterTypeCompatible(ft, fieldType.Type()) {
				s.removeFilter(view, filter)
				s.log.Debug("filter invalidated by field type change",
					zap.String("view", view.ID),
					zap.String("filter", filter.ID),
					zap.String("field_type", fieldType.Type()))
			}
		}
		if !fieldType.CanSortInView() {
			s.removeSortsForField(view, field.ID)
		}
	}
}

// FieldDeleted unconditionally removes every filter and every sort
// referencing the field, across every loaded view.
func (s *Store) FieldDeleted(field *types.Field) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, view := range s.items {
		for _, filter := range append([]*types.Filter(nil), view.Filters...) {
			if filter.FieldID == field.ID {
				s.removeFilter(view, filter)
			}
		}
		s.removeSortsForField(view, field.ID)
	}
	s.log.Debug("field references removed", zap.String("field", field.ID))
}

// removeSortsForField drops every sort on view referencing fieldID.
// Callers must hold the mutex.
func (s *Store) removeSortsForField(view *types.View, fieldID string) {
	for _, srt := range append([]*types.Sort(nil), view.Sorts...) {
		if srt.FieldID == fieldID {
			s.removeSort(view, srt)
		}
	}
}
