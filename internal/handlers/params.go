package handlers

import "net/http"

// contextKey is a private type for request-context values so keys cannot
// collide with other packages.
type contextKey string

const (
	// UserIDContextKey holds the authenticated user's id, set by the JWT
	// middleware.
	UserIDContextKey contextKey = "user_id"
	// RoleContextKey holds the authenticated user's role.
	RoleContextKey contextKey = "role"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not. It also supports the
// standard net/http PathValue API available in recent Go versions.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

// userIDFromContext reads the authenticated user id the JWT middleware put
// into the request context.
func userIDFromContext(r *http.Request) (int, bool) {
	userID, ok := r.Context().Value(UserIDContextKey).(int)
	return userID, ok
}
