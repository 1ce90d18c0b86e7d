// Package access decides, per request path and session, whether a request
// may proceed.
package access

import (
	"strings"
)

// Class is the access classification of a request path.
type Class int

const (
	// ClassDefaultProtected requires any valid session. It is the zero value
	// so that an unclassified path is never left open.
	ClassDefaultProtected Class = iota
	// ClassPublic is reachable without a session.
	ClassPublic
	// ClassAuthInternal belongs to the authentication provider and is always reachable.
	ClassAuthInternal
	// ClassAdminProtected requires a session with the admin role.
	ClassAdminProtected
)

func (c Class) String() string {
	switch c {
	case ClassPublic:
		return "PUBLIC"
	case ClassAuthInternal:
		return "AUTH_INTERNAL"
	case ClassAdminProtected:
		return "ADMIN_PROTECTED"
	default:
		return "DEFAULT_PROTECTED"
	}
}

// Open reports whether the class is reachable without a session.
func (c Class) Open() bool {
	return c == ClassPublic || c == ClassAuthInternal
}

// Rule pairs a path matcher with the class it assigns.
type Rule struct {
	Name  string
	Match func(path string) bool
	Class Class
}

func exact(paths ...string) func(string) bool {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return func(path string) bool {
		_, ok := set[path]
		return ok
	}
}

func prefix(prefixes ...string) func(string) bool {
	return func(path string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(path, p) {
				return true
			}
		}
		return false
	}
}

func extension(exts ...string) func(string) bool {
	return func(path string) bool {
		for _, ext := range exts {
			if strings.HasSuffix(path, ext) {
				return true
			}
		}
		return false
	}
}

// routeTable is evaluated top to bottom and the first match wins. Open
// classes come first, admin before the default.
var routeTable = []Rule{
	{
		Name:  "storefront pages",
		Match: exact("/", "/products", "/auth/login", "/auth/register", "/api/auth/register"),
		Class: ClassPublic,
	},
	{
		Name:  "catalog browsing",
		Match: prefix("/products/"),
		Class: ClassPublic,
	},
	{
		Name:  "static assets",
		Match: extension(".jpg", ".jpeg", ".png", ".gif", ".svg", ".css", ".js"),
		Class: ClassPublic,
	},
	{
		Name:  "auth provider",
		Match: prefix("/api/auth"),
		Class: ClassAuthInternal,
	},
	{
		Name:  "admin console",
		Match: prefix("/admin"),
		Class: ClassAdminProtected,
	},
	{
		Name:  "admin api",
		Match: prefix("/api/brands", "/api/models", "/api/products", "/api/users", "/api/profile"),
		Class: ClassAdminProtected,
	},
}

// Rules returns a copy of the routing table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(routeTable))
	copy(out, routeTable)
	return out
}

// Classify returns the class of the first rule matching path, or
// ClassDefaultProtected when none does.
func Classify(path string) Class {
	for _, rule := range routeTable {
		if rule.Match(path) {
			return rule.Class
		}
	}
	return ClassDefaultProtected
}
