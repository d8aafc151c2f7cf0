// Package net provides utilities for working with request contexts
package net

import (
	"context"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// ClientIP returns the best-effort requester address
// RealIP middleware has already folded X-Forwarded-For into RemoteAddr
func ClientIP(r *http.Request) string {
	return r.RemoteAddr
}

// UserAgent returns the client-identifying string, best-effort
func UserAgent(r *http.Request) string {
	return r.Header.Get("User-Agent")
}
