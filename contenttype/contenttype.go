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

// Package contenttype maps file extensions to MIME types using a fixed
// default table overlaid with caller-supplied overrides.
package contenttype

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownExtension is returned by [Table.Lookup] when a path has no
// extension or its extension has no entry in the table.
var ErrUnknownExtension = errors.New("unknown extension")

// Table is an immutable mapping from file extension (without the leading
// dot) to MIME type. A Table is safe to share across goroutines.
type Table struct {
	types map[string]string
}

// Defaults returns the extensions every Table starts from.
func Defaults() map[string]string {
	return map[string]string{
		"html":        "text/html",
		"png":         "image/png",
		"ico":         "image/vnd.microsoft.icon",
		"webmanifest": "application/manifest+json",
	}
}

// New returns a Table containing the default extensions overlaid with
// overrides. An override for an extension present in the defaults replaces
// the default; collisions are not an error.
func New(overrides map[string]string) *Table {
	types := Defaults()
	for ext, mimeType := range overrides {
		types[ext] = mimeType
	}
	return &Table{types: types}
}

// Lookup returns the MIME type for the given path based on the extension of
// its final element. Matching is case-sensitive. It returns an error that
// wraps [ErrUnknownExtension] if the path has no extension or the extension
// is not in the table.
func (t *Table) Lookup(path string) (string, error) {
	base := filepath.Base(path)
	// A lone leading dot does not start an extension.
	i := strings.LastIndex(base, ".")
	if i <= 0 || i == len(base)-1 {
		return "", fmt.Errorf("content type for %s: %w", path, ErrUnknownExtension)
	}
	mimeType, ok := t.types[base[i+1:]]
	if !ok {
		return "", fmt.Errorf("content type for %s: %w", path, ErrUnknownExtension)
	}
	return mimeType, nil
}
