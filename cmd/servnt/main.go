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

// servnt is a configuration-driven static asset server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gorilla/handlers"
	"github.com/spf13/cobra"
	"zombiezen.com/go/servnt/contenttype"
	"zombiezen.com/go/servnt/pathmap"
	"zombiezen.com/go/servnt/runhttp"
	"zombiezen.com/go/servnt/servntfile"
	"zombiezen.com/go/servnt/sigterm"
	"zombiezen.com/go/servnt/site"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), sigterm.Signals()...)
	cmd := new(serveCmd)
	rootCmd := &cobra.Command{
		Use:           "servnt [options]",
		Short:         "Configuration-driven static asset server",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cc *cobra.Command, args []string) error {
			return cmd.run(cc.Context())
		},
		DisableFlagsInUseLine: true,
	}
	rootCmd.Flags().StringVarP(&cmd.configPath, "config", "c", servntfile.DefaultName, "Path to settings document")
	rootCmd.Flags().StringVarP(&cmd.listenAddr, "listen", "l", "127.0.0.1:19518", "Address to listen on")

	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "servnt:", err)
		os.Exit(1)
	}
}

type serveCmd struct {
	configPath string
	listenAddr string
}

func (cmd *serveCmd) run(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("serve: %w", err)
		}
	}()
	configPath, err := filepath.Abs(cmd.configPath)
	if err != nil {
		return err
	}
	f, err := servntfile.Load(configPath)
	if err != nil {
		return err
	}

	// Configured directories are relative to the settings document.
	resolver, err := pathmap.New(filepath.Dir(configPath), f.Paths.Base, f.Paths.Mapped)
	if err != nil {
		return err
	}
	types := contenttype.New(f.Extensions)

	fmt.Printf("Serving app '%s (v%s)'\n", f.App.Name, f.App.Version)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := site.NewHandler(resolver, types)
	h.SetLogger(logger)
	srv := &http.Server{
		Addr:    cmd.listenAddr,
		Handler: handlers.LoggingHandler(os.Stderr, site.NewRouter(h)),
	}
	return runhttp.Serve(ctx, srv, &runhttp.Options{Logger: logger})
}
