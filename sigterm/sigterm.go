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

//go:build !windows

// Package sigterm provides the set of signals that request process
// termination on the current platform, for use with
// [os/signal.NotifyContext].
package sigterm

import (
	"os"

	"golang.org/x/sys/unix"
)

// Signals returns the termination signal set.
func Signals() []os.Signal {
	return []os.Signal{unix.SIGINT, unix.SIGTERM}
}
