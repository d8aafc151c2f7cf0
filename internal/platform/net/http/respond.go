// Package http provides helpers for writing JSON responses
//
// Success payloads are written unwrapped so handlers control the exact wire
// shape; errors share a single JSON envelope with status and request id
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "lingualog/internal/platform/errors"
	pnet "lingualog/internal/platform/net"
)

// ErrorEnvelope is the standard error body for all endpoints
type ErrorEnvelope struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Error      string `json:"error"`
	RequestID  string `json:"request_id,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondOK writes data unwrapped with a 200
func RespondOK(w stdhttp.ResponseWriter, _ *stdhttp.Request, data any) {
	JSON(w, stdhttp.StatusOK, data)
}

// RespondError maps a project error onto the error envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, wire := perr.HTTP(err)
	JSON(w, status, ErrorEnvelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Error:      wire.Message,
		RequestID:  pnet.RequestID(r.Context()),
	})
}

//
// Return-style helpers for early returns in handlers
//

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	// allow header overrides
	if resp.Header != nil {
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	// If Body is an error, derive status from error before writing
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	JSON(w, status, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }
