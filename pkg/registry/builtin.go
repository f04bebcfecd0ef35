package registry

import "github.com/tablekit/viewsync/pkg/types"

// Built-in field type keys.
const (
	FieldTypeText         = "text"
	FieldTypeLongText     = "long_text"
	FieldTypeURL          = "url"
	FieldTypeEmail        = "email"
	FieldTypeNumber       = "number"
	FieldTypeDate         = "date"
	FieldTypeBoolean      = "boolean"
	FieldTypeLinkRow      = "link_row"
	FieldTypeFile         = "file"
	FieldTypeSingleSelect = "single_select"
)

// Built-in filter type keys.
const (
	FilterTypeEqual             = "equal"
	FilterTypeNotEqual          = "not_equal"
	FilterTypeFilenameContains  = "filename_contains"
	FilterTypeContains          = "contains"
	FilterTypeContainsNot       = "contains_not"
	FilterTypeHigherThan        = "higher_than"
	FilterTypeLowerThan         = "lower_than"
	FilterTypeDateEqual         = "date_equal"
	FilterTypeDateNotEqual      = "date_not_equal"
	FilterTypeSingleSelectEqual = "single_select_equal"
	FilterTypeSingleSelectNotEq = "single_select_not_equal"
	FilterTypeBoolean           = "boolean"
	FilterTypeEmpty             = "empty"
	FilterTypeNotEmpty          = "not_empty"
)

// Built-in view type keys.
const (
	ViewTypeGrid = "grid"
)

// GridViewType is the grid view variant: rows in a spreadsheet-like grid.
type GridViewType struct{}

// Type returns "grid".
func (GridViewType) Type() string { return ViewTypeGrid }

// Serialize returns the grid-specific payload for the view's Extra bag.
func (GridViewType) Serialize(v *types.View) map[string]any {
	return nil
}

// Populate attaches the Extra bag and resets transient flags on a view
// received from a resource service.
func (gt GridViewType) Populate(v *types.View) {
	if v.Extra == nil {
		v.Extra = make(map[string]any)
	}
	for k, val := range gt.Serialize(v) {
		v.Extra[k] = val
	}
	v.Selected = false
	v.Loading = false
	if v.Filters == nil {
		v.Filters = []*types.Filter{}
	}
	if v.Sorts == nil {
		v.Sorts = []*types.Sort{}
	}
}

// staticFilterType is a filter variant defined by a key and a fixed
// compatibility list.
type staticFilterType struct {
	key    string
	fields []string
}

func (t staticFilterType) Type() string { return t.key }

func (t staticFilterType) CompatibleFieldTypes() []string { return t.fields }

// staticFieldType is a field variant defined by a key and a sortability flag.
type staticFieldType struct {
	key      string
	sortable bool
}

func (t staticFieldType) Type() string { return t.key }

func (t staticFieldType) CanSortInView() bool { return t.sortable }

// allFieldTypes is the compatibility list shared by the empty and not_empty
// filter variants.
var allFieldTypes = []string{
	FieldTypeText, FieldTypeLongText, FieldTypeURL, FieldTypeNumber,
	FieldTypeBoolean, FieldTypeDate, FieldTypeLinkRow, FieldTypeEmail,
	FieldTypeFile, FieldTypeSingleSelect,
}

// NewBuiltin creates a registry populated with the built-in view, filter,
// and field variants. Filter registration order is significant: automatic
// selection picks the first compatible variant.
func NewBuiltin() *Registry {
	r := New()

	_ = r.RegisterViewType(GridViewType{})

	filterTypes := []staticFilterType{
		{FilterTypeEqual, []string{
			FieldTypeText, FieldTypeLongText, FieldTypeURL,
			FieldTypeNumber, FieldTypeBoolean, FieldTypeEmail,
		}},
		{FilterTypeNotEqual, []string{
			FieldTypeText, FieldTypeLongText, FieldTypeURL,
			FieldTypeNumber, FieldTypeBoolean, FieldTypeEmail,
		}},
		{FilterTypeFilenameContains, []string{FieldTypeFile}},
		{FilterTypeContains, []string{
			FieldTypeText, FieldTypeLongText, FieldTypeURL, FieldTypeEmail,
		}},
		{FilterTypeContainsNot, []string{
			FieldTypeText, FieldTypeLongText, FieldTypeURL, FieldTypeEmail,
		}},
		{FilterTypeHigherThan, []string{FieldTypeNumber}},
		{FilterTypeLowerThan, []string{FieldTypeNumber}},
		{FilterTypeDateEqual, []string{FieldTypeDate}},
		{FilterTypeDateNotEqual, []string{FieldTypeDate}},
		{FilterTypeSingleSelectEqual, []string{FieldTypeSingleSelect}},
		{FilterTypeSingleSelectNotEq, []string{FieldTypeSingleSelect}},
		{FilterTypeBoolean, []string{FieldTypeBoolean}},
		{FilterTypeEmpty, allFieldTypes},
		{FilterTypeNotEmpty, allFieldTypes},
	}
	for _, ft := range filterTypes {
		_ = r.RegisterFilterType(ft)
	}

	fieldTypes := []staticFieldType{
		{FieldTypeText, true},
		{FieldTypeLongText, true},
		{FieldTypeURL, true},
		{FieldTypeEmail, true},
		{FieldTypeNumber, true},
		{FieldTypeDate, true},
		{FieldTypeBoolean, true},
		{FieldTypeLinkRow, false},
		{FieldTypeFile, false},
		{FieldTypeSingleSelect, true},
	}
	for _, ft := range fieldTypes {
		_ = r.RegisterFieldType(ft)
	}

	return r
}
