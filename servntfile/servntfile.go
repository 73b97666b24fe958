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

// Package servntfile reads the servnt.toml settings document.
package servntfile

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// DefaultName is the file name servnt looks for in its working directory.
const DefaultName = "servnt.toml"

// DefaultBase is the base directory used when paths.base is absent.
const DefaultBase = "src"

// File is the parsed form of a servnt.toml document.
type File struct {
	App        App               `toml:"app"`
	Extensions map[string]string `toml:"extensions"`
	Paths      Paths             `toml:"paths"`
}

// App identifies the served application. It is informational only.
type App struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Paths declares the directories to serve from.
type Paths struct {
	Base   string            `toml:"base"`
	Mapped map[string]string `toml:"mapped"`
}

// Load reads and parses the settings document at path, filling in
// defaults for absent optional fields.
func Load(path string) (*File, error) {
	f := new(File)
	if _, err := toml.DecodeFile(path, f); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	f.fillDefaults()
	return f, nil
}

// Parse parses a settings document from memory, filling in defaults for
// absent optional fields.
func Parse(data []byte) (*File, error) {
	f := new(File)
	if err := toml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	f.fillDefaults()
	return f, nil
}

func (f *File) fillDefaults() {
	if f.Paths.Base == "" {
		f.Paths.Base = DefaultBase
	}
	if f.Paths.Mapped == nil {
		f.Paths.Mapped = make(map[string]string)
	}
	if f.Extensions == nil {
		f.Extensions = make(map[string]string)
	}
}
