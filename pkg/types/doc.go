// Package types defines the view, filter, and sort entities, the resource
// service contracts, the type-descriptor interfaces, and the standard error
// values for the viewsync synchronization core.
package types
