package types

// ViewType describes a view variant. The store resolves variants through
// the registry at runtime; it never knows concrete variants in advance.
type ViewType interface {
	// Type returns the variant key, e.g. "grid".
	Type() string

	// Serialize returns the type-specific payload carried in the view's
	// Extra bag. May return nil when the variant has none.
	Serialize(v *View) map[string]any

	// Populate attaches the type-specific bag and resets the transient
	// client flags on a view received from a resource service.
	Populate(v *View)
}

// FilterType describes a filter variant and the field types it can
// meaningfully apply to.
type FilterType interface {
	// Type returns the variant key, e.g. "equal".
	Type() string

	// CompatibleFieldTypes returns the field-type keys this filter variant
	// accepts.
	CompatibleFieldTypes() []string
}

// FieldType describes a field variant's capabilities as far as the
// synchronization core is concerned.
type FieldType interface {
	// Type returns the variant key, e.g. "text".
	Type() string

	// CanSortInView reports whether sorts may reference fields of this type.
	CanSortInView() bool
}

// TypeCatalog is the subset of the type registry the field lifecycle needs
// to decide which filters and sorts a type change invalidates.
type TypeCatalog interface {
	// FilterTypes returns all filter variants in registration order.
	FilterTypes() []FilterType

	// FieldType returns the field variant for key, or false.
	FieldType(key string) (FieldType, bool)
}

// FilterTypeCompatible reports whether the filter variant lists the given
// field-type key among its compatible field types.
func FilterTypeCompatible(ft FilterType, fieldType string) bool {
	for _, t := range ft.CompatibleFieldTypes() {
		if t == fieldType {
			return true
		}
	}
	return false
}
