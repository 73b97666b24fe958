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

// Package runhttp runs an HTTP server until its context is canceled.
package runhttp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
)

// Options holds the optional arguments to [Serve].
type Options struct {
	// Listener will be used if non-nil to serve on.
	// Otherwise, the [*http.Server.Addr] will be used to listen for TCP
	// connections.
	Listener net.Listener
	// Logger, if non-nil, receives a line when the listener is ready and
	// when shutdown begins or fails.
	Logger *slog.Logger
}

// Serve runs the given HTTP server until the context is Done, then shuts
// it down gracefully, waiting for in-flight requests to finish.
func Serve(ctx context.Context, srv *http.Server, opts *Options) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts != nil && opts.Logger != nil {
		logger = opts.Logger
	}
	if srv.BaseContext == nil {
		srv2 := new(http.Server)
		*srv2 = *srv
		srv2.BaseContext = func(net.Listener) context.Context { return ctx }
		srv = srv2
	}

	var l net.Listener
	if opts != nil {
		l = opts.Listener
	}
	if l == nil {
		addr := srv.Addr
		if addr == "" {
			addr = ":http"
		}
		var err error
		l, err = net.Listen("tcp", addr)
		if err != nil {
			return err
		}
		// [*http.Server.Serve] will close l.
	}

	serveFinished := make(chan struct{})
	idleConnsClosed := make(chan struct{})
	go func() {
		defer close(idleConnsClosed)
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			if err := srv.Shutdown(context.Background()); err != nil {
				logger.Error("shutdown did not finish cleanly", "error", err)
			}
		case <-serveFinished:
		}
	}()

	logger.Info("listening", "address", l.Addr().String())
	err := srv.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	close(serveFinished)
	<-idleConnsClosed
	return err
}
