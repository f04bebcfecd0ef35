package types

// Navigation route names used for targets computed on view deletion.
const (
	RouteDashboard = "dashboard"
	RouteTable     = "table"
)

// Table identifies a table inside an application. Tables are owned by a
// sibling store and referenced here for navigation lookups only.
type Table struct {
	ID            string
	ApplicationID string
	Name          string
}

// Application groups tables. Owned by a sibling store.
type Application struct {
	ID     string
	Name   string
	Tables []*Table
}

// ApplicationResolver exposes the currently loaded applications so the
// store can locate the owner of a deleted view's table.
type ApplicationResolver interface {
	Applications() []*Application
}

// Target is a navigation destination. The zero value means "no redirect".
type Target struct {
	Route         string
	ApplicationID string
	TableID       string
}

// DefaultTarget is the landing destination used when a deleted view's table
// cannot be located among the loaded applications.
func DefaultTarget() Target {
	return Target{Route: RouteDashboard}
}

// IsZero reports whether the target carries no destination.
func (t Target) IsZero() bool {
	return t.Route == ""
}
