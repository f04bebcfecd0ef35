// Package integration provides CLI and backend integration tests for
// viewsync, plus the shared harness that builds the binary and isolates
// each test in its own config and data directories.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// viewsyncBin is the path to the built viewsync binary.
	viewsyncBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetViewsyncBin sets the path to the viewsync binary (called from TestMain).
func SetViewsyncBin(path string) {
	viewsyncBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and data
// directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build viewsync: %v", buildErr)
	}
	if viewsyncBin == "" {
		t.Fatal("viewsync binary not built (viewsyncBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a viewsync command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunViewsync executes the viewsync CLI with the given arguments.
func (e *TestEnv) RunViewsync(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(viewsyncBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run viewsync: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunViewsync executes the viewsync CLI and fails the test on a
// non-zero exit.
func (e *TestEnv) MustRunViewsync(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunViewsync(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("viewsync %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// ViewRow mirrors the CLI's JSON shape for a view.
type ViewRow struct {
	ID              string `json:"id"`
	TableID         string `json:"table_id"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	Order           int    `json:"order"`
	FiltersDisabled bool   `json:"filters_disabled"`
	Filters         int    `json:"filters"`
	Sorts           int    `json:"sorts"`
}

// FilterRow mirrors the CLI's JSON shape for a filter.
type FilterRow struct {
	ID    string `json:"id"`
	View  string `json:"view_id"`
	Field string `json:"field_id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// SortRow mirrors the CLI's JSON shape for a sort.
type SortRow struct {
	ID    string `json:"id"`
	View  string `json:"view_id"`
	Field string `json:"field_id"`
	Order string `json:"order"`
}

// FieldRow mirrors the CLI's JSON shape for a field.
type FieldRow struct {
	ID      string `json:"id"`
	TableID string `json:"table_id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

// DeleteResult mirrors the CLI's JSON shape for a view deletion.
type DeleteResult struct {
	Deleted string `json:"deleted"`
	Target  struct {
		Route         string `json:"Route"`
		ApplicationID string `json:"ApplicationID"`
		TableID       string `json:"TableID"`
	} `json:"target"`
}
