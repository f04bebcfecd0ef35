package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablekit/viewsync/pkg/types"
)

func newViewForChildren(t *testing.T, b *Backend) *types.View {
	t.Helper()
	view, err := b.Views().Create(context.Background(), "table-1", map[string]any{"type": "grid", "name": "Parent"})
	require.NoError(t, err)
	return view
}

func TestFilterCreateRequiresParentView(t *testing.T) {
	b := newAttachedBackend(t)

	_, err := b.Filters().Create(context.Background(), "missing-view", map[string]any{
		"field": "field-1", "type": "equal",
	})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestFilterCreateRequiresFieldAndType(t *testing.T) {
	b := newAttachedBackend(t)
	view := newViewForChildren(t, b)
	ctx := context.Background()

	_, err := b.Filters().Create(ctx, view.ID, map[string]any{"type": "equal"})
	assert.Error(t, err)

	_, err = b.Filters().Create(ctx, view.ID, map[string]any{"field": "field-1"})
	assert.Error(t, err)
}

func TestFilterLifecycle(t *testing.T) {
	b := newAttachedBackend(t)
	view := newViewForChildren(t, b)
	ctx := context.Background()

	first, err := b.Filters().Create(ctx, view.ID, map[string]any{
		"field": "field-1", "type": "equal", "value": "a",
	})
	require.NoError(t, err)
	second, err := b.Filters().Create(ctx, view.ID, map[string]any{
		"field": "field-2", "type": "contains", "value": "b",
	})
	require.NoError(t, err)

	filters, err := b.Filters().FetchAll(ctx, view.ID)
	require.NoError(t, err)
	require.Len(t, filters, 2)
	assert.Equal(t, first.ID, filters[0].ID, "insertion order is preserved")
	assert.Equal(t, second.ID, filters[1].ID)

	updated, err := b.Filters().Update(ctx, first.ID, map[string]any{"value": "changed"})
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.Value)
	assert.Equal(t, "field-1", updated.FieldID, "untouched attributes survive")

	require.NoError(t, b.Filters().Delete(ctx, first.ID))
	filters, err = b.Filters().FetchAll(ctx, view.ID)
	require.NoError(t, err)
	require.Len(t, filters, 1)
	assert.Equal(t, second.ID, filters[0].ID)
}

func TestFilterUpdateNotFound(t *testing.T) {
	b := newAttachedBackend(t)

	_, err := b.Filters().Update(context.Background(), "missing", map[string]any{"value": "x"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSortCreateDefaultsAscending(t *testing.T) {
	b := newAttachedBackend(t)
	view := newViewForChildren(t, b)

	srt, err := b.Sorts().Create(context.Background(), view.ID, map[string]any{"field": "field-1"})
	require.NoError(t, err)
	assert.Equal(t, types.SortOrderASC, srt.Order)
}

func TestSortCreateRejectsInvalidOrder(t *testing.T) {
	b := newAttachedBackend(t)
	view := newViewForChildren(t, b)

	_, err := b.Sorts().Create(context.Background(), view.ID, map[string]any{
		"field": "field-1", "order": "sideways",
	})
	assert.ErrorIs(t, err, types.ErrInvalidSortOrder)
}

func TestSortLifecycle(t *testing.T) {
	b := newAttachedBackend(t)
	view := newViewForChildren(t, b)
	ctx := context.Background()

	srt, err := b.Sorts().Create(ctx, view.ID, map[string]any{
		"field": "field-1", "order": types.SortOrderDESC,
	})
	require.NoError(t, err)

	updated, err := b.Sorts().Update(ctx, srt.ID, map[string]any{"order": types.SortOrderASC})
	require.NoError(t, err)
	assert.Equal(t, types.SortOrderASC, updated.Order)

	_, err = b.Sorts().Update(ctx, srt.ID, map[string]any{"order": "diagonal"})
	assert.ErrorIs(t, err, types.ErrInvalidSortOrder)

	require.NoError(t, b.Sorts().Delete(ctx, srt.ID))
	err = b.Sorts().Delete(ctx, srt.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
