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

// Package remap rewrites a scanner's preliminary marker table so its keys
// are the canonical handles from the host's registry. The rewrite is a
// pure function; the coordinator decides when it runs and where the
// result goes.
package remap

import "dirpx.dev/remx/apis"

// Convert returns a new mapping in which every key whose name the
// registry knows is replaced by the registry's canonical handle. Keys
// with unrecognized names pass through unchanged, target sets are carried
// through untouched, and every input key yields exactly one output key.
// The one exception: two distinct input handles canonicalizing to the
// same registry handle collapse, last write winning.
//
// A nil or empty input yields an empty mapping.
func Convert(prelim apis.Mapping, reg apis.Registry) apis.Mapping {
	out := make(apis.Mapping, len(prelim))
	for marker, targets := range prelim {
		if canonical, ok := reg.Lookup(marker.Name); ok {
			out[canonical] = targets
			continue
		}
		out[marker] = targets
	}
	return out
}

// Equal reports whether two mappings hold the same keys mapped to the
// same target sets.
func Equal(a, b apis.Mapping) bool {
	if len(a) != len(b) {
		return false
	}
	for marker, ta := range a {
		tb, ok := b[marker]
		if !ok || len(ta) != len(tb) {
			return false
		}
		for target := range ta {
			if _, ok := tb[target]; !ok {
				return false
			}
		}
	}
	return true
}
