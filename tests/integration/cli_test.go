// CLI integration tests for viewsync. Each test drives the built binary
// against an isolated config and data directory.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the viewsync binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "viewsync-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "viewsync")
	SetViewsyncBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/viewsync")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{
			Err:    err,
			Output: string(output),
		})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

func TestCLI_Init(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunViewsync("init")
	if result.Stdout == "" {
		t.Error("expected init output message")
	}
	if _, err := os.Stat(filepath.Join(env.DataDir, "viewsync.db")); err != nil {
		t.Errorf("viewsync.db not created: %v", err)
	}
}

func TestCLI_ViewLifecycle(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunViewsync("init")

	created := ParseJSON[ViewRow](t, env.MustRunViewsync(
		"--json", "view", "create", "Tasks grid", "--table", "table-1").Stdout)
	if created.Type != "grid" {
		t.Errorf("expected grid view, got %q", created.Type)
	}
	if created.Name != "Tasks grid" {
		t.Errorf("expected name preserved, got %q", created.Name)
	}

	views := ParseJSON[[]ViewRow](t, env.MustRunViewsync(
		"--json", "view", "list", "--table", "table-1").Stdout)
	if len(views) != 1 || views[0].ID != created.ID {
		t.Fatalf("expected the created view in the list, got %v", views)
	}

	updated := ParseJSON[ViewRow](t, env.MustRunViewsync(
		"--json", "view", "update", created.ID, "--table", "table-1", "--name", "Renamed").Stdout)
	if updated.Name != "Renamed" {
		t.Errorf("expected renamed view, got %q", updated.Name)
	}

	del := ParseJSON[DeleteResult](t, env.MustRunViewsync(
		"--json", "view", "delete", created.ID, "--table", "table-1").Stdout)
	if del.Deleted != created.ID {
		t.Errorf("expected deletion of %s, got %s", created.ID, del.Deleted)
	}
	if del.Target.Route != "dashboard" {
		t.Errorf("expected dashboard fallback target, got %q", del.Target.Route)
	}

	views = ParseJSON[[]ViewRow](t, env.MustRunViewsync(
		"--json", "view", "list", "--table", "table-1").Stdout)
	if len(views) != 0 {
		t.Errorf("expected no views after delete, got %v", views)
	}
}

func TestCLI_FilterAutoTypeSelection(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunViewsync("init")

	view := ParseJSON[ViewRow](t, env.MustRunViewsync(
		"--json", "view", "create", "Grid", "--table", "table-1").Stdout)
	textField := ParseJSON[FieldRow](t, env.MustRunViewsync(
		"--json", "field", "add", "Title", "--table", "table-1", "--type", "text").Stdout)
	fileField := ParseJSON[FieldRow](t, env.MustRunViewsync(
		"--json", "field", "add", "Docs", "--table", "table-1", "--type", "file").Stdout)

	textFilter := ParseJSON[FilterRow](t, env.MustRunViewsync(
		"--json", "filter", "add", view.ID, "--table", "table-1",
		"--field", textField.ID, "--value", "urgent").Stdout)
	if textFilter.Type != "equal" {
		t.Errorf("expected equal for a text field, got %q", textFilter.Type)
	}
	if strings.HasPrefix(textFilter.ID, "pending-") {
		t.Errorf("printed filter must carry the confirmed identifier, got %q", textFilter.ID)
	}

	fileFilter := ParseJSON[FilterRow](t, env.MustRunViewsync(
		"--json", "filter", "add", view.ID, "--table", "table-1",
		"--field", fileField.ID).Stdout)
	if fileFilter.Type != "filename_contains" {
		t.Errorf("expected filename_contains for a file field, got %q", fileFilter.Type)
	}

	// An incompatible explicit type is rejected as a user error.
	result := env.RunViewsync("--json", "filter", "add", view.ID, "--table", "table-1",
		"--field", textField.ID, "--type", "higher_than")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for incompatible filter type, got %d", result.ExitCode)
	}
}

func TestCLI_SortPerFieldReuse(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunViewsync("init")

	view := ParseJSON[ViewRow](t, env.MustRunViewsync(
		"--json", "view", "create", "Grid", "--table", "table-1").Stdout)
	field := ParseJSON[FieldRow](t, env.MustRunViewsync(
		"--json", "field", "add", "Due", "--table", "table-1", "--type", "date").Stdout)

	first := ParseJSON[SortRow](t, env.MustRunViewsync(
		"--json", "sort", "add", view.ID, "--table", "table-1", "--field", field.ID).Stdout)
	if first.Order != "ASC" {
		t.Errorf("expected default ASC, got %q", first.Order)
	}

	// Adding again on the same field flips the existing rule instead of
	// creating a second one.
	second := ParseJSON[SortRow](t, env.MustRunViewsync(
		"--json", "sort", "add", view.ID, "--table", "table-1",
		"--field", field.ID, "--order", "DESC").Stdout)
	if second.ID != first.ID {
		t.Errorf("expected the existing sort to be reused, got %s and %s", first.ID, second.ID)
	}
	if second.Order != "DESC" {
		t.Errorf("expected DESC after toggle, got %q", second.Order)
	}

	views := ParseJSON[[]ViewRow](t, env.MustRunViewsync(
		"--json", "view", "list", "--table", "table-1").Stdout)
	if views[0].Sorts != 1 {
		t.Errorf("expected exactly one sort on the view, got %d", views[0].Sorts)
	}
}

func TestCLI_SortRejectsUnsortableField(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunViewsync("init")

	view := ParseJSON[ViewRow](t, env.MustRunViewsync(
		"--json", "view", "create", "Grid", "--table", "table-1").Stdout)
	field := ParseJSON[FieldRow](t, env.MustRunViewsync(
		"--json", "field", "add", "Docs", "--table", "table-1", "--type", "file").Stdout)

	result := env.RunViewsync("--json", "sort", "add", view.ID, "--table", "table-1", "--field", field.ID)
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for an unsortable field, got %d", result.ExitCode)
	}
}

func TestCLI_FieldTypeChangeCascades(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunViewsync("init")

	view := ParseJSON[ViewRow](t, env.MustRunViewsync(
		"--json", "view", "create", "Grid", "--table", "table-1").Stdout)
	field := ParseJSON[FieldRow](t, env.MustRunViewsync(
		"--json", "field", "add", "Title", "--table", "table-1", "--type", "text").Stdout)

	env.MustRunViewsync("--json", "filter", "add", view.ID, "--table", "table-1",
		"--field", field.ID, "--type", "equal")
	env.MustRunViewsync("--json", "filter", "add", view.ID, "--table", "table-1",
		"--field", field.ID, "--type", "not_empty")
	env.MustRunViewsync("--json", "sort", "add", view.ID, "--table", "table-1", "--field", field.ID)

	// text -> date invalidates equal but keeps not_empty, and date remains
	// sortable.
	updated := ParseJSON[FieldRow](t, env.MustRunViewsync(
		"--json", "field", "update-type", field.ID, "date", "--table", "table-1").Stdout)
	if updated.Type != "date" {
		t.Fatalf("expected date field, got %q", updated.Type)
	}

	views := ParseJSON[[]ViewRow](t, env.MustRunViewsync(
		"--json", "view", "list", "--table", "table-1").Stdout)
	if views[0].Filters != 1 {
		t.Errorf("expected 1 surviving filter, got %d", views[0].Filters)
	}
	if views[0].Sorts != 1 {
		t.Errorf("expected the sort to survive, got %d", views[0].Sorts)
	}

	// date -> file drops the sort as well.
	env.MustRunViewsync("--json", "field", "update-type", field.ID, "file", "--table", "table-1")
	views = ParseJSON[[]ViewRow](t, env.MustRunViewsync(
		"--json", "view", "list", "--table", "table-1").Stdout)
	if views[0].Sorts != 0 {
		t.Errorf("expected no sorts after the field became unsortable, got %d", views[0].Sorts)
	}
}

func TestCLI_FieldDeleteCascades(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunViewsync("init")

	view := ParseJSON[ViewRow](t, env.MustRunViewsync(
		"--json", "view", "create", "Grid", "--table", "table-1").Stdout)
	doomed := ParseJSON[FieldRow](t, env.MustRunViewsync(
		"--json", "field", "add", "Doomed", "--table", "table-1", "--type", "text").Stdout)
	kept := ParseJSON[FieldRow](t, env.MustRunViewsync(
		"--json", "field", "add", "Kept", "--table", "table-1", "--type", "number").Stdout)

	env.MustRunViewsync("--json", "filter", "add", view.ID, "--table", "table-1", "--field", doomed.ID)
	env.MustRunViewsync("--json", "filter", "add", view.ID, "--table", "table-1", "--field", kept.ID)
	env.MustRunViewsync("--json", "sort", "add", view.ID, "--table", "table-1", "--field", doomed.ID)

	env.MustRunViewsync("--json", "field", "delete", doomed.ID, "--table", "table-1")

	views := ParseJSON[[]ViewRow](t, env.MustRunViewsync(
		"--json", "view", "list", "--table", "table-1").Stdout)
	if views[0].Filters != 1 {
		t.Errorf("expected only the kept field's filter, got %d", views[0].Filters)
	}
	if views[0].Sorts != 0 {
		t.Errorf("expected no sorts after field delete, got %d", views[0].Sorts)
	}
}

func TestCLI_UnknownViewIsUserError(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunViewsync("init")

	result := env.RunViewsync("--json", "view", "update", "missing", "--table", "table-1", "--name", "x")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1, got %d", result.ExitCode)
	}
}
