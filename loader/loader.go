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

// Package loader provides loading contexts backed by the process's own
// type space. A loading context answers "give me the handle for this
// marker name"; the registry builder drives one over the seed list.
package loader

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/remx/apis"
	uref "dirpx.dev/remx/utils/reflect"
)

var (
	// ErrNilValue is returned when FromTypes receives a nil value.
	ErrNilValue = errors.New("remx(loader): nil value provided")
	// ErrDuplicateName indicates two values normalized to the same marker name.
	ErrDuplicateName = errors.New("remx(loader): duplicate marker name")
)

// FromTypes builds a Loader over an explicit set of values. Each value's
// type is normalized to its package-qualified marker name and indexed
// under it. The handle a Load returns carries the reflect.Type the values
// were compiled with, i.e. this context's local identity.
func FromTypes(cfg apis.Config, vals ...any) (apis.Loader, error) {
	byName := make(map[string]apis.Marker, len(vals))
	for _, v := range vals {
		if v == nil {
			return nil, ErrNilValue
		}
		t, err := uref.Normalize(reflect.TypeOf(v), cfg)
		if err != nil {
			return nil, fmt.Errorf("remx(loader): %w", err)
		}
		name := t.PkgPath() + "." + t.Name()
		if prev, ok := byName[name]; ok && prev.Type != t {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		byName[name] = apis.Marker{Name: name, Type: t}
	}
	return &static{byName: byName}, nil
}

// static is an immutable Loader over a fixed name index.
type static struct {
	byName map[string]apis.Marker
}

// Ensure static implements apis.Loader.
var _ apis.Loader = (*static)(nil)

// Load resolves name within this context.
func (s *static) Load(name string) (apis.Marker, error) {
	if m, ok := s.byName[name]; ok {
		return m, nil
	}
	return apis.Marker{}, fmt.Errorf("%w: %s", apis.ErrMarkerNotFound, name)
}
