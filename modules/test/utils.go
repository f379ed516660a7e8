// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package test

import (
	"net/http"
	"sync/atomic"
)

// MockVariableValue sets a variable to a new value (if given) and returns a function that restores the original one
func MockVariableValue[T any](p *T, v ...T) (reset func()) {
	old := *p
	if len(v) > 0 {
		*p = v[0]
	}
	return func() { *p = old }
}

// CountingHandler wraps a handler and counts the requests it has served
type CountingHandler struct {
	Handler http.Handler
	count   atomic.Int64
}

func (h *CountingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.count.Add(1)
	if h.Handler == nil {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	h.Handler.ServeHTTP(w, r)
}

// Count returns how many requests reached the handler
func (h *CountingHandler) Count() int64 {
	return h.count.Load()
}
