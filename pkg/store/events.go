package store

import "github.com/tablekit/viewsync/pkg/types"

// OnFilterCreated registers a listener invoked after a filter creation is
// confirmed by the resource service, so unrelated components can react to
// new filters without polling. Listeners run on the creating goroutine
// with the store unlocked; they may call store actions.
func (s *Store) OnFilterCreated(fn func(view *types.View, filter *types.Filter)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterCreated = append(s.filterCreated, fn)
}

// notifyFilterCreated broadcasts to the registered listeners.
func (s *Store) notifyFilterCreated(view *types.View, filter *types.Filter) {
	s.mu.Lock()
	listeners := make([]func(*types.View, *types.Filter), len(s.filterCreated))
	copy(listeners, s.filterCreated)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(view, filter)
	}
}
