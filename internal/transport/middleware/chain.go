// Package middleware holds the HTTP middleware shared by every route:
// request ids, panic recovery, session authentication, access logging,
// route guards and per-client rate limiting.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one is outermost:
// Chain(a, b)(h) serves as a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}

// Then applies m to a handler function.
func (m Middleware) Then(h http.HandlerFunc) http.Handler {
	return m(h)
}
