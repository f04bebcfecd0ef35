package types

// View attribute keys accepted by Attribute and SetAttribute. Type-specific
// keys live in the Extra bag and are addressed by their own names.
const (
	ViewAttrName            = "name"
	ViewAttrOrder           = "order"
	ViewAttrFiltersDisabled = "filters_disabled"
)

// View is a saved presentation over a table: a view type, an ordered filter
// collection, an ordered sort collection, and a type-specific extension bag.
//
// The ID is server-assigned. Type is immutable after creation and must be a
// registered view variant. Selected and Loading are transient client flags
// and are never sent to a resource service.
type View struct {
	ID              string
	TableID         string
	Type            string
	Name            string
	Order           int
	FiltersDisabled bool
	Filters         []*Filter
	Sorts           []*Sort

	// Extra holds type-specific serialized metadata, populated by the
	// view-type descriptor. Its keys participate in Attribute/SetAttribute.
	Extra map[string]any

	// Transient client flags.
	Selected bool
	Loading  bool
}

// Attribute returns the current value of a named mutable attribute and
// whether the view has that attribute. Unknown keys report false.
func (v *View) Attribute(key string) (any, bool) {
	switch key {
	case ViewAttrName:
		return v.Name, true
	case ViewAttrOrder:
		return v.Order, true
	case ViewAttrFiltersDisabled:
		return v.FiltersDisabled, true
	}
	if v.Extra != nil {
		if val, ok := v.Extra[key]; ok {
			return val, true
		}
	}
	return nil, false
}

// SetAttribute sets a named mutable attribute. It reports whether the value
// was applied: unknown keys and values of the wrong type are ignored, so
// callers cannot introduce new attributes through updates. Keys already
// present in the Extra bag accept any value.
func (v *View) SetAttribute(key string, value any) bool {
	switch key {
	case ViewAttrName:
		s, ok := value.(string)
		if !ok {
			return false
		}
		v.Name = s
		return true
	case ViewAttrOrder:
		n, ok := value.(int)
		if !ok {
			return false
		}
		v.Order = n
		return true
	case ViewAttrFiltersDisabled:
		b, ok := value.(bool)
		if !ok {
			return false
		}
		v.FiltersDisabled = b
		return true
	}
	if v.Extra != nil {
		if _, ok := v.Extra[key]; ok {
			v.Extra[key] = value
			return true
		}
	}
	return false
}

// FilterByID returns the filter with the given ID, or nil.
func (v *View) FilterByID(id string) *Filter {
	for _, f := range v.Filters {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// SortByID returns the sort with the given ID, or nil.
func (v *View) SortByID(id string) *Sort {
	for _, s := range v.Sorts {
		if s.ID == id {
			return s
		}
	}
	return nil
}
