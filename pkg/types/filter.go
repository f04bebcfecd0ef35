package types

// Filter attribute keys accepted by Attribute and SetAttribute.
const (
	FilterAttrField = "field"
	FilterAttrType  = "type"
	FilterAttrValue = "value"
)

// Filter is a single row-inclusion predicate attached to a view. It
// references exactly one field by identifier and carries a filter-type key
// constrained by the type's compatible field types.
//
// Before server confirmation the ID holds a locally generated temporary
// identifier; the store swaps it for the server-assigned one exactly once
// at confirmation time. Loading and Hover are transient client flags.
type Filter struct {
	ID      string
	ViewID  string
	FieldID string
	Type    string
	Value   string

	// Transient client flags.
	Loading bool
	Hover   bool
}

// Attribute returns the current value of a named mutable attribute and
// whether the filter has that attribute.
func (f *Filter) Attribute(key string) (any, bool) {
	switch key {
	case FilterAttrField:
		return f.FieldID, true
	case FilterAttrType:
		return f.Type, true
	case FilterAttrValue:
		return f.Value, true
	}
	return nil, false
}

// SetAttribute sets a named mutable attribute, reporting whether the value
// was applied. Unknown keys and wrongly typed values are ignored.
func (f *Filter) SetAttribute(key string, value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	switch key {
	case FilterAttrField:
		f.FieldID = s
	case FilterAttrType:
		f.Type = s
	case FilterAttrValue:
		f.Value = s
	default:
		return false
	}
	return true
}
