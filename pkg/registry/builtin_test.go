package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablekit/viewsync/pkg/types"
)

func TestBuiltinCatalogue(t *testing.T) {
	r := NewBuiltin()

	_, err := r.ViewType(ViewTypeGrid)
	require.NoError(t, err)

	filterKeys := []string{
		FilterTypeEqual, FilterTypeNotEqual, FilterTypeFilenameContains,
		FilterTypeContains, FilterTypeContainsNot, FilterTypeHigherThan,
		FilterTypeLowerThan, FilterTypeDateEqual, FilterTypeDateNotEqual,
		FilterTypeSingleSelectEqual, FilterTypeSingleSelectNotEq,
		FilterTypeBoolean, FilterTypeEmpty, FilterTypeNotEmpty,
	}
	for _, key := range filterKeys {
		_, err := r.FilterType(key)
		assert.NoError(t, err, "filter type %s should be registered", key)
	}
	assert.Len(t, r.FilterTypes(), len(filterKeys))

	fieldKeys := []string{
		FieldTypeText, FieldTypeLongText, FieldTypeURL, FieldTypeEmail,
		FieldTypeNumber, FieldTypeDate, FieldTypeBoolean, FieldTypeLinkRow,
		FieldTypeFile, FieldTypeSingleSelect,
	}
	for _, key := range fieldKeys {
		_, ok := r.FieldType(key)
		assert.True(t, ok, "field type %s should be registered", key)
	}
}

func TestBuiltinCompatibility(t *testing.T) {
	r := NewBuiltin()

	tests := []struct {
		filterType string
		fieldType  string
		want       bool
	}{
		{FilterTypeEqual, FieldTypeText, true},
		{FilterTypeEqual, FieldTypeDate, false},
		{FilterTypeEqual, FieldTypeFile, false},
		{FilterTypeContains, FieldTypeLongText, true},
		{FilterTypeContains, FieldTypeNumber, false},
		{FilterTypeHigherThan, FieldTypeNumber, true},
		{FilterTypeHigherThan, FieldTypeText, false},
		{FilterTypeDateEqual, FieldTypeDate, true},
		{FilterTypeBoolean, FieldTypeBoolean, true},
		{FilterTypeBoolean, FieldTypeText, false},
		{FilterTypeFilenameContains, FieldTypeFile, true},
		{FilterTypeSingleSelectEqual, FieldTypeSingleSelect, true},
		{FilterTypeEmpty, FieldTypeLinkRow, true},
		{FilterTypeNotEmpty, FieldTypeFile, true},
	}

	for _, tt := range tests {
		t.Run(tt.filterType+"/"+tt.fieldType, func(t *testing.T) {
			ft, err := r.FilterType(tt.filterType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, types.FilterTypeCompatible(ft, tt.fieldType))
		})
	}
}

func TestBuiltinAutoSelection(t *testing.T) {
	r := NewBuiltin()

	// equal is registered first, so it wins for text fields.
	ft, ok := r.FirstCompatibleFilterType(FieldTypeText)
	require.True(t, ok)
	assert.Equal(t, FilterTypeEqual, ft.Type())

	// file fields skip past the equality variants to filename_contains.
	ft, ok = r.FirstCompatibleFilterType(FieldTypeFile)
	require.True(t, ok)
	assert.Equal(t, FilterTypeFilenameContains, ft.Type())

	// date fields land on date_equal.
	ft, ok = r.FirstCompatibleFilterType(FieldTypeDate)
	require.True(t, ok)
	assert.Equal(t, FilterTypeDateEqual, ft.Type())

	// link_row only matches the universal empty variants.
	ft, ok = r.FirstCompatibleFilterType(FieldTypeLinkRow)
	require.True(t, ok)
	assert.Equal(t, FilterTypeEmpty, ft.Type())
}

func TestBuiltinSortability(t *testing.T) {
	r := NewBuiltin()

	sortable := []string{
		FieldTypeText, FieldTypeLongText, FieldTypeURL, FieldTypeEmail,
		FieldTypeNumber, FieldTypeDate, FieldTypeBoolean, FieldTypeSingleSelect,
	}
	for _, key := range sortable {
		ft, ok := r.FieldType(key)
		require.True(t, ok)
		assert.True(t, ft.CanSortInView(), "%s should be sortable", key)
	}

	for _, key := range []string{FieldTypeLinkRow, FieldTypeFile} {
		ft, ok := r.FieldType(key)
		require.True(t, ok)
		assert.False(t, ft.CanSortInView(), "%s should not be sortable", key)
	}
}

func TestGridPopulate(t *testing.T) {
	v := &types.View{
		ID:       "view-1",
		Type:     ViewTypeGrid,
		Selected: true,
		Loading:  true,
	}
	GridViewType{}.Populate(v)

	assert.NotNil(t, v.Extra)
	assert.NotNil(t, v.Filters)
	assert.NotNil(t, v.Sorts)
	assert.False(t, v.Selected, "transient flags reset on populate")
	assert.False(t, v.Loading)
}
