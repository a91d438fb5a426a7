// Package middle contains HTTP middleware for the lr1construct server,
// trimmed from dekarrin/tunaq's server/middle package: AuthHandler/
// RequireAuth/OptionalAuth are dropped since this service has no user
// accounts, but the Middleware type and panic-recovery shape (DontPanic)
// are kept, with a RequestID middleware added in their place that stamps
// each request with an ID in its context and the X-Request-Id response
// header. The log lines written by result.Log do not include that ID.
package middle

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/corvidlabs/lr1construct/server/result"
	"github.com/google/uuid"
)

type mwFunc http.HandlerFunc

func (sf mwFunc) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	sf(w, req)
}

// Middleware is a function that takes a handler and returns a new handler
// which wraps the given one and provides some additional functionality.
type Middleware func(next http.Handler) http.Handler

// ctxKey is a key in the context of a request populated by middleware in
// this package.
type ctxKey int

const (
	// RequestIDKey retrieves the correlation ID set by RequestID.
	RequestIDKey ctxKey = iota
)

// RequestID returns middleware that assigns each request a fresh UUID,
// stores it in the request context under RequestIDKey, and echoes it back
// as the X-Request-Id response header.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return mwFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.New().String()
			w.Header().Set("X-Request-Id", id)
			ctx := context.WithValue(r.Context(), RequestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DontPanic returns a Middleware that recovers a panic in the wrapped
// handler and turns it into an HTTP-500, rather than crashing the server.
func DontPanic() Middleware {
	return func(next http.Handler) http.Handler {
		return mwFunc(func(w http.ResponseWriter, r *http.Request) {
			defer panicTo500(w, r)
			next.ServeHTTP(w, r)
		})
	}
}

func panicTo500(w http.ResponseWriter, req *http.Request) (panicVal interface{}) {
	if panicErr := recover(); panicErr != nil {
		r := result.TextErr(
			http.StatusInternalServerError,
			"An internal server error occurred",
			fmt.Sprintf("panic: %v\nSTACK TRACE: %s", panicErr, string(debug.Stack())),
		)
		r.WriteResponse(w)
		r.Log(req)
		return true
	}
	return false
}
