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

package servntfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string

		want    *File
		wantErr bool
	}{
		{
			name: "Full",
			data: `[app]
name = "example"
version = "1.2.3"

[extensions]
json = "application/json"

[paths]
base = "public"

[paths.mapped]
"/static" = "assets"
`,
			want: &File{
				App: App{Name: "example", Version: "1.2.3"},
				Extensions: map[string]string{
					"json": "application/json",
				},
				Paths: Paths{
					Base: "public",
					Mapped: map[string]string{
						"/static": "assets",
					},
				},
			},
		},
		{
			name: "Defaults",
			data: `[app]
name = "example"
version = "0.1.0"

[paths.mapped]
`,
			want: &File{
				App:        App{Name: "example", Version: "0.1.0"},
				Extensions: map[string]string{},
				Paths: Paths{
					Base:   DefaultBase,
					Mapped: map[string]string{},
				},
			},
		},
		{
			name:    "Malformed",
			data:    `[app`,
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse([]byte(test.data))
			if test.wantErr {
				if err == nil {
					t.Error("Parse did not return an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Parse (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultName)
	const doc = `[app]
name = "example"
version = "1.0.0"

[paths.mapped]
"/static" = "assets"
`
	if err := os.WriteFile(path, []byte(doc), 0o666); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &File{
		App:        App{Name: "example", Version: "1.0.0"},
		Extensions: map[string]string{},
		Paths: Paths{
			Base:   DefaultBase,
			Mapped: map[string]string{"/static": "assets"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(dir, "nonexistent.toml")); err == nil {
		t.Error("Load of nonexistent file did not return an error")
	}
}
