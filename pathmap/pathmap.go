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

// Package pathmap resolves untrusted virtual request paths to concrete
// files on disk, applying configured route-prefix remappings with a
// fallback base directory.
package pathmap

import (
	"errors"
	"fmt"
	slashpath "path"
	"path/filepath"
	"sort"
	"strings"
)

// ErrForbidden is returned by [Resolver.Resolve] when the resolved path
// escapes the directory its virtual path was mapped to.
var ErrForbidden = errors.New("path outside served directory")

type mapping struct {
	prefix string // rooted, cleaned
	dir    string // absolute, canonical
}

// A Resolver maps virtual paths to files under a base directory or one of
// an immutable set of prefix-mapped directories. A Resolver is safe to
// share across goroutines.
type Resolver struct {
	base     string // absolute, canonical
	mappings []mapping
}

// New returns a Resolver rooted at the given working root. The base
// directory and every mapped target directory are interpreted relative to
// root (absolute paths are kept as-is) and canonicalized up front, so New
// fails if any configured directory does not exist.
//
// When several prefixes could match the same virtual path, the longest
// prefix wins.
func New(root, base string, mapped map[string]string) (*Resolver, error) {
	canonicalBase, err := canonicalDir(root, base)
	if err != nil {
		return nil, fmt.Errorf("resolve base directory: %w", err)
	}
	r := &Resolver{base: canonicalBase}
	for prefix, dir := range mapped {
		canonical, err := canonicalDir(root, dir)
		if err != nil {
			return nil, fmt.Errorf("resolve mapped directory for %s: %w", prefix, err)
		}
		r.mappings = append(r.mappings, mapping{
			prefix: slashpath.Join("/", filepath.ToSlash(prefix)),
			dir:    canonical,
		})
	}
	sort.Slice(r.mappings, func(i, j int) bool {
		pi, pj := r.mappings[i].prefix, r.mappings[j].prefix
		if len(pi) != len(pj) {
			return len(pi) > len(pj)
		}
		return pi < pj
	})
	return r, nil
}

// Resolve maps the virtual path of a request to an absolute, canonical
// path of an existing file. The virtual path is treated as rooted: a
// mapping's prefix must match whole path segments, so the prefix "/foo"
// matches "/foo" and "/foo/bar.txt" but never "/foobar". The longest
// matching prefix determines the target directory; a matched prefix with
// nothing after it resolves to the target directory itself. Virtual paths
// with no matching prefix resolve against the base directory.
//
// Canonicalizing the final path doubles as the existence check: Resolve
// returns an error satisfying errors.Is(err, fs.ErrNotExist) if the file
// is missing. If the canonical path lies outside the directory the virtual
// path mapped to, Resolve returns an error wrapping [ErrForbidden].
func (r *Resolver) Resolve(virtual string) (string, error) {
	vpath := slashpath.Join("/", filepath.ToSlash(virtual))
	dir := r.base
	rest := strings.TrimPrefix(vpath, "/")
	for _, m := range r.mappings {
		if stripped, ok := cutSegmentPrefix(vpath, m.prefix); ok {
			dir = m.dir
			rest = stripped
			break
		}
	}
	joined := dir
	if rest != "" {
		joined = filepath.Join(dir, filepath.FromSlash(rest))
	}
	resolved, err := filepath.EvalSymlinks(joined)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", virtual, err)
	}
	if !within(dir, resolved) {
		return "", fmt.Errorf("resolve %s: %w", virtual, ErrForbidden)
	}
	return resolved, nil
}

// canonicalDir makes dir absolute relative to root and resolves symlinks,
// which also verifies that dir exists.
func canonicalDir(root, dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// cutSegmentPrefix strips prefix from vpath if prefix covers whole path
// segments of vpath. Both arguments must be rooted and cleaned.
func cutSegmentPrefix(vpath, prefix string) (rest string, ok bool) {
	if prefix == "/" {
		return strings.TrimPrefix(vpath, "/"), true
	}
	if vpath == prefix {
		return "", true
	}
	if strings.HasPrefix(vpath, prefix) && vpath[len(prefix)] == '/' {
		return vpath[len(prefix)+1:], true
	}
	return "", false
}

// within reports whether p is dir or lies under dir. Both must be
// absolute and canonical.
func within(dir, p string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
