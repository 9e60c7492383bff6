package ippjob

import "net/http"

// Doer is the HTTP transport capability the orchestrator requires: POST a
// request, get back a response whose Body streams the bytes read. This is
// exactly *http.Client's method set, so the zero-effort way to satisfy it
// is to pass a real *http.Client; tests pass a fake implementation instead.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
