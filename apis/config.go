/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "log/slog"

// Config carries read-only knobs shared across the module. It is passed
// by value and treated as immutable by implementations.
type Config struct {
	// MaxUnwrap limits container unwrapping depth (ptr/slice/array) when
	// deriving a marker name from a reflect.Type. Acts as a safety guard
	// against pathological nesting.
	MaxUnwrap int

	// WriteBack controls whether the coordinator stores the canonicalized
	// mapping back into the scope after a cache-miss conversion. When
	// false only the converted flag is written, and later resolves return
	// whatever table the scope still holds.
	WriteBack bool

	// Logger receives diagnostics for degraded registry builds and scope
	// precondition violations. Nil means discard.
	Logger *slog.Logger
}
