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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/remx/apis"
	"dirpx.dev/remx/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// containers) has no package-qualified name (anonymous struct, builtin, func).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no package-qualified name")
)

// MarkerName derives the logical marker name for t: the package-qualified
// name of the nearest named inner type, "pkgpath.Type".
//
// Unwrapping policy:
//   - ptr/slice/array -> Elem(), up to cfg.MaxUnwrap levels
//   - otherwise: named with a package path -> done; anything else
//     (builtin, anonymous, func, chan, map) -> ErrReflectTypeNotNamed.
//
// Builtins never qualify: a marker name must carry a package path so it is
// unique across loading contexts. If MaxUnwrap <= 0, the default is used.
func MarkerName(t reflect.Type, cfg apis.Config) (string, error) {
	nt, err := Normalize(t, cfg)
	if err != nil {
		return "", err
	}
	return nt.PkgPath() + "." + nt.Name(), nil
}

// Normalize unwraps containers according to cfg.MaxUnwrap and returns the
// nearest named, package-qualified inner type, or an error if none is found.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; t != nil && i < maxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array:
			t = t.Elem()

		default:
			if named(t) {
				return t, nil
			}
			return nil, ErrReflectTypeNotNamed
		}
	}

	// After reaching max depth, ensure we ended on a named type.
	if t != nil && named(t) {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

func named(t reflect.Type) bool {
	return t.Name() != "" && t.PkgPath() != ""
}
