package types

// Sort order values.
const (
	SortOrderASC  = "ASC"
	SortOrderDESC = "DESC"
)

// Sort attribute keys accepted by Attribute and SetAttribute.
const (
	SortAttrField = "field"
	SortAttrOrder = "order"
)

// validSortOrders is the set of recognized sort order values.
var validSortOrders = map[string]bool{
	SortOrderASC:  true,
	SortOrderDESC: true,
}

// Sort is a single ordering rule attached to a view, referencing one field
// and a direction. At most one sort may exist per (view, field) pair; that
// invariant is enforced by the orchestration layer, not by the entity.
//
// The temporary-identifier lifecycle is the same as Filter's.
type Sort struct {
	ID      string
	ViewID  string
	FieldID string
	Order   string

	// Transient client flag.
	Loading bool
}

// ValidSortOrder reports whether order is a recognized sort direction.
func ValidSortOrder(order string) bool {
	return validSortOrders[order]
}

// Attribute returns the current value of a named mutable attribute and
// whether the sort has that attribute.
func (s *Sort) Attribute(key string) (any, bool) {
	switch key {
	case SortAttrField:
		return s.FieldID, true
	case SortAttrOrder:
		return s.Order, true
	}
	return nil, false
}

// SetAttribute sets a named mutable attribute, reporting whether the value
// was applied. Unknown keys and wrongly typed values are ignored.
func (s *Sort) SetAttribute(key string, value any) bool {
	v, ok := value.(string)
	if !ok {
		return false
	}
	switch key {
	case SortAttrField:
		s.FieldID = v
	case SortAttrOrder:
		s.Order = v
	default:
		return false
	}
	return true
}
