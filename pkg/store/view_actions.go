package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tablekit/viewsync/pkg/types"
)

// FetchAll replaces the entire view set with the server's current views for
// the table. The selection is cleared unconditionally first: a selected
// view from a table about to be replaced would point at a stale object.
//
// On transport failure the view set is reset to empty and the error is
// returned; callers must treat that as fatal for the "views loaded"
// precondition.
func (s *Store) FetchAll(ctx context.Context, tableID string) error {
	s.mu.Lock()
	s.unselectAll()
	s.setLoading(true)
	s.setLoaded(false)
	s.mu.Unlock()

	views, err := s.views.FetchAll(ctx, tableID, true, true)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		err = s.populateAll(views)
	}
	if err != nil {
		s.setItems([]*types.View{})
		s.setLoading(false)
		return fmt.Errorf("fetch views for table %s: %w", tableID, err)
	}

	s.setItems(views)
	s.setLoaded(true)
	s.setLoading(false)
	s.log.Debug("views fetched", zap.String("table", tableID), zap.Int("count", len(views)))
	return nil
}

// populateAll runs each view through its registered view-type descriptor.
func (s *Store) populateAll(views []*types.View) error {
	for _, v := range views {
		vt, err := s.reg.ViewType(v.Type)
		if err != nil {
			return err
		}
		vt.Populate(v)
	}
	return nil
}

// Create persists a new view of the given type for the table and appends
// the server's returned representation to the store.
//
// The type key must not be present in values (that is a caller-contract
// violation, not a silent override) and must be a registered view variant.
// Both violations are returned before any remote call. The new view is
// never invented locally: populating the type-specific bag requires the
// authoritative representation from the service.
func (s *Store) Create(ctx context.Context, typeKey, tableID string, values map[string]any) (*types.View, error) {
	if _, ok := values["type"]; ok {
		return nil, types.ErrReservedKey
	}
	if _, err := s.reg.ViewType(typeKey); err != nil {
		return nil, err
	}

	merged := make(map[string]any, len(values)+1)
	for k, v := range values {
		merged[k] = v
	}
	merged["type"] = typeKey

	created, err := s.views.Create(ctx, tableID, merged)
	if err != nil {
		return nil, fmt.Errorf("create view: %w", err)
	}
	if err := s.ForceCreate(created); err != nil {
		return nil, err
	}
	s.log.Debug("view created", zap.String("view", created.ID), zap.String("type", created.Type))
	return created, nil
}

// ForceCreate populates a confirmed view through its view-type descriptor
// and appends it to the store without a remote call.
func (s *Store) ForceCreate(view *types.View) error {
	vt, err := s.reg.ViewType(view.Type)
	if err != nil {
		return err
	}
	vt.Populate(view)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.addItem(view)
	return nil
}

// Update optimistically applies the subset of values whose keys exist on
// the view, then issues the remote update. Unknown keys are silently
// ignored; callers cannot introduce new attributes. On failure the saved
// prior values are re-applied and the error is returned.
//
// The view's loading flag is cleared only on success; callers wanting a
// loading indicator set it before invoking Update.
func (s *Store) Update(ctx context.Context, view *types.View, values map[string]any) error {
	s.mu.Lock()
	old := s.updateItem(view, values)
	seq := s.editSeq[view.ID]
	s.mu.Unlock()

	_, err := s.views.Update(ctx, view.ID, values)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.rollbackItem(view, old, seq)
		return fmt.Errorf("update view %s: %w", view.ID, err)
	}
	s.setItemLoading(view, false)
	return nil
}

// rollbackItem re-applies saved prior values unless a newer local edit
// landed after the failed request's optimistic apply. Callers must hold
// the mutex.
func (s *Store) rollbackItem(view *types.View, old map[string]any, seq uint64) {
	if s.editSeq[view.ID] != seq {
		s.log.Warn("discarding stale view rollback", zap.String("view", view.ID))
		return
	}
	s.applyItemValues(view, old)
	s.log.Warn("view update rolled back", zap.String("view", view.ID))
}

// Delete removes the view remotely and locally. A NotFound failure from
// the service collapses to success: the resource is already gone server
// side and the desired end state is achieved. Any other failure is
// returned without local removal.
//
// When the deleted view was selected the returned target names where to
// navigate: the owning table when it can be located among the loaded
// applications, the default landing target otherwise. The zero target
// means no redirect is needed.
func (s *Store) Delete(ctx context.Context, view *types.View) (types.Target, error) {
	if err := s.views.Delete(ctx, view.ID); err != nil && !errors.Is(err, types.ErrNotFound) {
		return types.Target{}, fmt.Errorf("delete view %s: %w", view.ID, err)
	}
	return s.ForceDelete(view), nil
}

// ForceDelete removes the view locally without a remote call, returning
// the navigation target when the view was selected.
func (s *Store) ForceDelete(view *types.View) types.Target {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target types.Target
	if s.selected != nil && s.selected.ID == view.ID {
		s.unselectAll()
		target = s.targetForTable(view.TableID)
	}
	s.removeItem(view)
	s.log.Debug("view removed", zap.String("view", view.ID))
	return target
}

// targetForTable locates the application owning tableID among the loaded
// applications. Callers must hold the mutex.
func (s *Store) targetForTable(tableID string) types.Target {
	if s.apps == nil {
		return types.DefaultTarget()
	}
	for _, app := range s.apps.Applications() {
		for _, table := range app.Tables {
			if table.ID == tableID {
				return types.Target{
					Route:         types.RouteTable,
					ApplicationID: app.ID,
					TableID:       table.ID,
				}
			}
		}
	}
	return types.DefaultTarget()
}

// Select marks the view as selected, clearing any prior selection.
// Selection is a pure in-memory reference change with no remote call.
// Returns types.ErrViewNotFound when the view is not a live member of the
// current view set.
func (s *Store) Select(view *types.View) error {
	return s.SelectByID(view.ID)
}

// SelectByID selects the view with the given identifier.
func (s *Store) SelectByID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.itemByID(id)
	if v == nil {
		return fmt.Errorf("%w: %s", types.ErrViewNotFound, id)
	}
	s.selectItem(v)
	return nil
}

// Unselect clears the selection, if any.
func (s *Store) Unselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unselectAll()
}
