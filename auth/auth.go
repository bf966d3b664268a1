// ABOUTME: Request identity and capability checks for admin tables.
// ABOUTME: Middleware resolves a user from the request; Can gates actions.

package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userContextKey contextKey = "user"

// User is the acting identity for one request.
type User struct {
	Name string

	// Caps is the capability set. Ignored when Super is set.
	Caps map[string]bool

	// Super short-circuits every capability check.
	Super bool
}

// Can reports whether the user holds a capability. The empty capability is
// always granted.
func (u User) Can(capability string) bool {
	if capability == "" || u.Super {
		return true
	}
	return u.Caps[capability]
}

// Resolver turns a bearer token into a user. The token is empty when the
// request carries no Authorization header.
type Resolver func(token string) User

// DefaultResolver grants full access to an anonymous admin. Suitable for
// local tools and demos; production callers supply their own resolver.
func DefaultResolver(token string) User {
	if name, ok := strings.CutPrefix(token, "user:"); ok {
		return User{Name: name, Caps: map[string]bool{}}
	}
	return User{Name: "admin", Super: true}
}

// Middleware resolves the request's user and stores it in the context.
func Middleware(resolve Resolver) func(http.Handler) http.Handler {
	if resolve == nil {
		resolve = DefaultResolver
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))
			user := resolve(token)
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the request's user. Requests that skipped the
// middleware get an anonymous user with no capabilities.
func UserFromContext(ctx context.Context) User {
	user, ok := ctx.Value(userContextKey).(User)
	if !ok {
		return User{Name: "anonymous"}
	}
	return user
}

// Can reports whether the request's user holds a capability.
func Can(ctx context.Context, capability string) bool {
	return UserFromContext(ctx).Can(capability)
}
