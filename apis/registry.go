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

// Registry is the canonical name-keyed table of marker handles, every one
// resolved through the host's own loading context. A Registry is built
// once and never mutated afterwards; implementations must be safe for
// lock-free concurrent reads.
type Registry interface {
	// Lookup returns the canonical handle for a marker name, if present.
	Lookup(name string) (Marker, bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Marker
	// Count returns the number of canonical entries.
	Count() int
}
