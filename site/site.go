// Copyright 2026 The Servnt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package site serves resolved files over HTTP. It composes path
// resolution and content-type lookup into a single handler and wires the
// handler into a router.
package site

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"zombiezen.com/go/servnt/contenttype"
	"zombiezen.com/go/servnt/pathmap"
)

// indexPath is the virtual path served for requests to the root URL.
const indexPath = "index.html"

// Handler is an HTTP handler that resolves the request path to a file and
// serves its bytes with the looked-up content type. Any failure along the
// way, whether the path does not resolve, the extension is unknown, or the
// read fails, produces a 500 response with an empty body; the cause is
// only written to the handler's logger.
type Handler struct {
	resolver *pathmap.Resolver
	types    *contenttype.Table
	logger   *slog.Logger
}

// NewHandler returns a new Handler serving files located by resolver with
// content types from types. Errors are discarded until a logger is set
// with [Handler.SetLogger].
func NewHandler(resolver *pathmap.Resolver, types *contenttype.Table) *Handler {
	return &Handler{
		resolver: resolver,
		types:    types,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger that receives per-request failure detail.
//
// SetLogger must not be called concurrently with ServeHTTP.
func (h *Handler) SetLogger(logger *slog.Logger) {
	if logger == nil {
		panic("nil logger passed to site.Handler.SetLogger")
	}
	h.logger = logger
}

// ServeHTTP serves the file named by the request's path. A request for the
// root URL serves index.html.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	virtual := strings.TrimPrefix(r.URL.Path, "/")
	if virtual == "" {
		virtual = indexPath
	}
	h.ServeFile(w, r, virtual)
}

// ServeFile serves the file that the given virtual path resolves to.
func (h *Handler) ServeFile(w http.ResponseWriter, r *http.Request, virtual string) {
	concrete, err := h.resolver.Resolve(virtual)
	if err != nil {
		h.fail(w, r, virtual, err)
		return
	}
	mimeType, err := h.types.Lookup(concrete)
	if err != nil {
		h.fail(w, r, virtual, err)
		return
	}
	data, err := os.ReadFile(concrete)
	if err != nil {
		h.fail(w, r, virtual, err)
		return
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if r.Method == http.MethodHead {
		return
	}
	w.Write(data)
}

// fail logs the failure and sends the uniform external error: 500 with an
// empty body, so the client cannot distinguish a missing file from an
// out-of-scope path or an unmapped extension.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, virtual string, err error) {
	h.logger.ErrorContext(r.Context(), "request failed", "path", virtual, "error", err)
	w.WriteHeader(http.StatusInternalServerError)
}

// NewRouter returns a router serving h on the root URL and on every other
// path. Methods other than GET and HEAD receive 405 responses.
func NewRouter(h *Handler) *mux.Router {
	files := handlers.MethodHandler{
		http.MethodGet:  h,
		http.MethodHead: h,
	}
	r := mux.NewRouter()
	r.Handle("/", files)
	r.PathPrefix("/").Handler(files)
	return r
}
