package store

import (
	"github.com/google/uuid"

	"github.com/tablekit/viewsync/pkg/types"
)

// Mutation primitives. Every state transition funnels through these so each
// transition can be tested in isolation. All of them require the store
// mutex to be held; none of them performs a remote call.

// newPendingID returns a temporary identifier for a not-yet-persisted
// entity. Temporary identifiers live in their own namespace; they are
// swapped for the server-assigned identifier exactly once at confirmation.
func newPendingID() string {
	return "pending-" + uuid.NewString()
}

func (s *Store) setLoading(v bool) { s.loading = v }

func (s *Store) setLoaded(v bool) { s.loaded = v }

// setItems replaces the entire view set. Prior views, their filters and
// sorts, and their edit counters are discarded wholesale.
func (s *Store) setItems(items []*types.View) {
	s.items = items
	s.editSeq = make(map[string]uint64)
}

func (s *Store) addItem(v *types.View) {
	s.items = append(s.items, v)
}

func (s *Store) removeItem(v *types.View) {
	for i, item := range s.items {
		if item.ID == v.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	delete(s.editSeq, v.ID)
}

// updateItem applies the subset of values whose keys exist on the view and
// returns the prior values of the applied keys. The returned map is the
// rollback payload for a failed remote update.
func (s *Store) updateItem(v *types.View, values map[string]any) map[string]any {
	old := make(map[string]any)
	for key, val := range values {
		prior, ok := v.Attribute(key)
		if !ok {
			continue
		}
		if v.SetAttribute(key, val) {
			old[key] = prior
		}
	}
	if len(old) > 0 {
		s.editSeq[v.ID]++
	}
	return old
}

// applyItemValues re-applies saved values without filtering. Used for
// rollback; the keys were whitelisted when they were saved.
func (s *Store) applyItemValues(v *types.View, values map[string]any) {
	for key, val := range values {
		v.SetAttribute(key, val)
	}
	s.editSeq[v.ID]++
}

func (s *Store) setItemLoading(v *types.View, loading bool) {
	v.Loading = loading
}

// selectItem marks exactly one view as selected, clearing any prior
// selection first.
func (s *Store) selectItem(v *types.View) {
	s.unselectAll()
	v.Selected = true
	s.selected = v
}

// unselectAll clears the selected flag on every view and empties the
// direct selection reference.
func (s *Store) unselectAll() {
	for _, item := range s.items {
		item.Selected = false
	}
	s.selected = nil
}

func (s *Store) addFilter(v *types.View, f *types.Filter) {
	v.Filters = append(v.Filters, f)
}

// finalizeFilter swaps the temporary identifier for the server-assigned one
// and converges the filter on the server's returned representation. The
// edit counter moves with the identifier.
func (s *Store) finalizeFilter(f *types.Filter, confirmed *types.Filter) {
	if seq, ok := s.editSeq[f.ID]; ok {
		delete(s.editSeq, f.ID)
		s.editSeq[confirmed.ID] = seq
	}
	f.ID = confirmed.ID
	f.FieldID = confirmed.FieldID
	f.Type = confirmed.Type
	f.Value = confirmed.Value
	f.Loading = false
}

// updateFilter applies the subset of values whose keys exist on the filter
// and returns the prior values of the applied keys.
func (s *Store) updateFilter(f *types.Filter, values map[string]any) map[string]any {
	old := make(map[string]any)
	for key, val := range values {
		prior, ok := f.Attribute(key)
		if !ok {
			continue
		}
		if f.SetAttribute(key, val) {
			old[key] = prior
		}
	}
	if len(old) > 0 {
		s.editSeq[f.ID]++
	}
	return old
}

func (s *Store) applyFilterValues(f *types.Filter, values map[string]any) {
	for key, val := range values {
		f.SetAttribute(key, val)
	}
	s.editSeq[f.ID]++
}

func (s *Store) removeFilter(v *types.View, f *types.Filter) {
	for i, item := range v.Filters {
		if item.ID == f.ID {
			v.Filters = append(v.Filters[:i], v.Filters[i+1:]...)
			break
		}
	}
	delete(s.editSeq, f.ID)
}

func (s *Store) setFilterLoading(f *types.Filter, loading bool) {
	f.Loading = loading
}

func (s *Store) addSort(v *types.View, srt *types.Sort) {
	v.Sorts = append(v.Sorts, srt)
}

// finalizeSort is the sort analogue of finalizeFilter.
func (s *Store) finalizeSort(srt *types.Sort, confirmed *types.Sort) {
	if seq, ok := s.editSeq[srt.ID]; ok {
		delete(s.editSeq, srt.ID)
		s.editSeq[confirmed.ID] = seq
	}
	srt.ID = confirmed.ID
	srt.FieldID = confirmed.FieldID
	srt.Order = confirmed.Order
	srt.Loading = false
}

// updateSort applies the subset of values whose keys exist on the sort and
// returns the prior values of the applied keys.
func (s *Store) updateSort(srt *types.Sort, values map[string]any) map[string]any {
	old := make(map[string]any)
	for key, val := range values {
		prior, ok := srt.Attribute(key)
		if !ok {
			continue
		}
		if srt.SetAttribute(key, val) {
			old[key] = prior
		}
	}
	if len(old) > 0 {
		s.editSeq[srt.ID]++
	}
	return old
}

func (s *Store) applySortValues(srt *types.Sort, values map[string]any) {
	for key, val := range values {
		srt.SetAttribute(key, val)
	}
	s.editSeq[srt.ID]++
}

func (s *Store) removeSort(v *types.View, srt *types.Sort) {
	for i, item := range v.Sorts {
		if item.ID == srt.ID {
			v.Sorts = append(v.Sorts[:i], v.Sorts[i+1:]...)
			break
		}
	}
	delete(s.editSeq, srt.ID)
}

func (s *Store) setSortLoading(srt *types.Sort, loading bool) {
	srt.Loading = loading
}
