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

// Seed is the versioned list of marker names a registry build resolves.
// Baseline names ship with the framework's baseline version and must all
// resolve; Optional names appeared in later versions and are resolved
// defensively, after every baseline name. Order inside each list is the
// resolution order and is part of the compatibility contract.
type Seed struct {
	Baseline []string
	Optional []string
}

// IsZero reports whether s names nothing at all.
func (s Seed) IsZero() bool {
	return len(s.Baseline) == 0 && len(s.Optional) == 0
}
