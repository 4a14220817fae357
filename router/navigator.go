// Package router models the client's navigation surface: the named routes,
// the navigator that moves between them, the one-shot remembered destination,
// and the guard that gates privileged routes on the presence of a session.
package router

// Navigator moves the client to a route. Implementations range from the
// console shell's screen switcher to recording fakes in tests; the session
// layer only ever asks for a route change and never cares how it is rendered.
type Navigator interface {
	Navigate(path string)
}

// Route paths. Login is the entry point every invalidation returns to;
// Dashboard is the default landing location after authentication.
const (
	RouteLogin          = "/login"
	RouteRegister       = "/register"
	RouteVerifyUsername = "/verify-username"
	RouteDashboard      = "/dashboard"
	RouteEmployees      = "/employees"
	RouteAddEmployee    = "/add-employee"
	RouteDepartments    = "/departments"
	RouteProfile        = "/profile"
	RouteAdmin          = "/admin"
	RouteAuditLogs      = "/admin/audit-logs"
)
