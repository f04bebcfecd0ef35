package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewSetAttribute(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		applied bool
		check   func(t *testing.T, v *View)
	}{
		{
			name:    "name accepts a string",
			key:     "name",
			value:   "Renamed",
			applied: true,
			check: func(t *testing.T, v *View) {
				assert.Equal(t, "Renamed", v.Name)
			},
		},
		{
			name:    "name rejects a non-string",
			key:     "name",
			value:   42,
			applied: false,
			check: func(t *testing.T, v *View) {
				assert.Equal(t, "Initial", v.Name)
			},
		},
		{
			name:    "order accepts an int",
			key:     "order",
			value:   7,
			applied: true,
			check: func(t *testing.T, v *View) {
				assert.Equal(t, 7, v.Order)
			},
		},
		{
			name:    "filters_disabled accepts a bool",
			key:     "filters_disabled",
			value:   true,
			applied: true,
			check: func(t *testing.T, v *View) {
				assert.True(t, v.FiltersDisabled)
			},
		},
		{
			name:    "unknown key is ignored",
			key:     "public",
			value:   true,
			applied: false,
			check: func(t *testing.T, v *View) {
				_, ok := v.Attribute("public")
				assert.False(t, ok, "unknown key must not become an attribute")
			},
		},
		{
			name:    "existing extra key accepts any value",
			key:     "row_height",
			value:   33,
			applied: true,
			check: func(t *testing.T, v *View) {
				assert.Equal(t, 33, v.Extra["row_height"])
			},
		},
		{
			name:    "absent extra key is ignored",
			key:     "card_cover",
			value:   "field-1",
			applied: false,
			check: func(t *testing.T, v *View) {
				_, ok := v.Extra["card_cover"]
				assert.False(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &View{
				ID:    "view-1",
				Name:  "Initial",
				Order: 1,
				Extra: map[string]any{"row_height": 25},
			}
			applied := v.SetAttribute(tt.key, tt.value)
			assert.Equal(t, tt.applied, applied)
			tt.check(t, v)
		})
	}
}

func TestViewAttribute(t *testing.T) {
	v := &View{
		Name:            "Grid view",
		Order:           3,
		FiltersDisabled: true,
		Extra:           map[string]any{"row_height": 25},
	}

	got, ok := v.Attribute("name")
	assert.True(t, ok)
	assert.Equal(t, "Grid view", got)

	got, ok = v.Attribute("order")
	assert.True(t, ok)
	assert.Equal(t, 3, got)

	got, ok = v.Attribute("filters_disabled")
	assert.True(t, ok)
	assert.Equal(t, true, got)

	got, ok = v.Attribute("row_height")
	assert.True(t, ok)
	assert.Equal(t, 25, got)

	_, ok = v.Attribute("nonexistent")
	assert.False(t, ok)
}

func TestViewChildLookup(t *testing.T) {
	f := &Filter{ID: "filter-1"}
	srt := &Sort{ID: "sort-1"}
	v := &View{
		Filters: []*Filter{f},
		Sorts:   []*Sort{srt},
	}

	assert.Same(t, f, v.FilterByID("filter-1"))
	assert.Nil(t, v.FilterByID("filter-2"))
	assert.Same(t, srt, v.SortByID("sort-1"))
	assert.Nil(t, v.SortByID("sort-2"))
}
