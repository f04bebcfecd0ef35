// Shared helpers for viewsync CLI commands.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tablekit/viewsync/pkg/registry"
	"github.com/tablekit/viewsync/pkg/sqlite"
	"github.com/tablekit/viewsync/pkg/store"
	"github.com/tablekit/viewsync/pkg/types"
)

// session bundles an attached backend with a store loaded for one table.
type session struct {
	backend sqlite.Backend
	reg     *registry.Registry
	store   *store.Store
	fields  types.FieldService
}

// openSession attaches the SQLite backend, builds the store for tableID,
// and performs the initial bulk fetch. The caller must defer close.
func openSession(ctx context.Context, tableID string) (*session, error) {
	backend, err := attachBackend()
	if err != nil {
		return nil, err
	}

	reg := registry.NewBuiltin()
	fields := backend.Fields()
	resolver, err := fields.Resolver(ctx, tableID)
	if err != nil {
		backend.Detach()
		return nil, fmt.Errorf("load fields: %w", err)
	}

	st, err := store.New(store.Config{
		Views:    backend.Views(),
		Filters:  backend.Filters(),
		Sorts:    backend.Sorts(),
		Registry: reg,
		Fields:   resolver,
		Logger:   buildLogger(),
	})
	if err != nil {
		backend.Detach()
		return nil, err
	}
	if err := st.FetchAll(ctx, tableID); err != nil {
		backend.Detach()
		return nil, err
	}

	return &session{backend: backend, reg: reg, store: st, fields: fields}, nil
}

func (s *session) close() {
	s.backend.Detach()
}

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// buildLogger returns a development logger when --verbose is set, a no-op
// logger otherwise.
func buildLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// exitCodeError carries the process exit code back to main so deferred
// cleanup in subcommands runs before the process terminates.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// exitError wraps msg in an error that main resolves to the given code.
func exitError(code int, msg string) error {
	return &exitCodeError{code: code, msg: msg}
}

// isNotFound reports whether err is a resource lookup failure suitable for
// a user-level "not found" message.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrViewNotFound)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// lookupView resolves a view id against the loaded store.
func lookupView(s *session, id string) (*types.View, error) {
	view, ok := s.store.ViewByID(id)
	if !ok {
		return nil, exitError(exitUserError, fmt.Sprintf("view %q not found", id))
	}
	return view, nil
}
