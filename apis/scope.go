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

// Scope is a string-keyed attribute store with a bounded lifecycle,
// created and torn down by the host. The scanner writes the preliminary
// mapping into a Scope before the first resolve; the coordinator reads
// and flags it. Attribute writes are last-write-wins; implementations
// must be safe for concurrent Get/Set from host request threads.
type Scope interface {
	// Get returns the attribute value by name, or false when absent.
	Get(name string) (any, bool)
	// Set stores the attribute value under name, replacing any prior value.
	Set(name string, value any)
}
