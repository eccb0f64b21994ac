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

import "reflect"

// Marker is a handle to one loaded representation of an extension-point
// marker type.
//
// Name is the marker's logical identity: the package-qualified type name,
// stable across every loading context for the lifetime of a deployment.
// Type is the context-local identity: the reflect.Type the producing
// context resolved. Two Markers with equal Name and different Type
// represent the same logical marker loaded through different contexts;
// they compare unequal and index different map entries on purpose.
type Marker struct {
	// Name is the package-qualified marker type name.
	Name string
	// Type is the representation resolved inside one loading context.
	Type reflect.Type
}

// IsZero reports whether m carries neither identity.
func (m Marker) IsZero() bool {
	return m.Name == "" && m.Type == nil
}

// Tag is implemented by extension-point marker types. A loaded type that
// does not implement Tag is not a marker, whatever its name says.
type Tag interface {
	ExtensionMarker()
}

// tagType is the interface type used for marker checks.
var tagType = reflect.TypeOf((*Tag)(nil)).Elem()

// IsMarkerType reports whether t (or *t) implements Tag.
func IsMarkerType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	return t.Implements(tagType) || reflect.PointerTo(t).Implements(tagType)
}

// TargetSet holds the classes discovered to carry a marker. The set is
// owned by the scanning collaborator; this module only carries it through.
type TargetSet map[reflect.Type]struct{}

// NewTargetSet builds a TargetSet from the given types.
func NewTargetSet(types ...reflect.Type) TargetSet {
	set := make(TargetSet, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

// Mapping associates marker handles with the targets discovered for them.
// Both the scanner's preliminary table and the canonicalized table share
// this shape; only the keys differ between the two.
type Mapping map[Marker]TargetSet
