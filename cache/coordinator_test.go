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

package cache_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/remx/apis"
	"dirpx.dev/remx/cache"
	"dirpx.dev/remx/config"
	"dirpx.dev/remx/loader"
	"dirpx.dev/remx/markers"
	"dirpx.dev/remx/registry"
	"dirpx.dev/remx/remap"
	"dirpx.dev/remx/scope"
)

// Scanner-context doubles with marker names the registry knows and one it doesn't.
type foreignComponent struct{}
type foreignStranger struct{}

// Discovered targets.
type widget struct{}
type gadget struct{}

// frameworkRegistry builds the framework registry over its own markers.
func frameworkRegistry(t *testing.T) apis.Registry {
	t.Helper()
	cfg := config.DefaultConfig()
	l, err := loader.FromTypes(cfg, markers.All()...)
	require.NoError(t, err)
	reg, rep := registry.Build(l, markers.DefaultSeed(), cfg)
	require.True(t, rep.Complete(), "framework registry build degraded: %+v", rep)
	return reg
}

func newCoordinator(t *testing.T, opts ...config.Option) (*cache.Coordinator, apis.Registry) {
	t.Helper()
	reg := frameworkRegistry(t)
	coord, err := cache.New(reg, config.NewConfig(opts...))
	require.NoError(t, err)
	return coord, reg
}

func componentName() string {
	tt := reflect.TypeOf(markers.Component{})
	return tt.PkgPath() + "." + tt.Name()
}

func foreignHandle(name string, v any) apis.Marker {
	return apis.Marker{Name: name, Type: reflect.TypeOf(v)}
}

func seededScope(s apis.Scope, m apis.Mapping) apis.Scope {
	s.Set(cache.MappingAttr, m)
	return s
}

func prelimMapping() apis.Mapping {
	return apis.Mapping{
		foreignHandle(componentName(), foreignComponent{}): apis.NewTargetSet(
			reflect.TypeOf(widget{}), reflect.TypeOf(gadget{}),
		),
		foreignHandle("elsewhere.Stranger", foreignStranger{}): apis.NewTargetSet(
			reflect.TypeOf(widget{}),
		),
	}
}

func TestNew_NilRegistry(t *testing.T) {
	_, err := cache.New(nil, config.DefaultConfig())
	assert.ErrorIs(t, err, cache.ErrNilRegistry)
}

func TestResolve_CanonicalizesOncePerScope(t *testing.T) {
	for _, tc := range []struct {
		name string
		s    apis.Scope
	}{
		{"application", scope.NewApplication()},
		{"request", scope.NewRequest()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			coord, reg := newCoordinator(t)
			s := seededScope(tc.s, prelimMapping())

			out, err := coord.Resolve(s)
			require.NoError(t, err)
			require.Len(t, out, 2)

			canonical, ok := reg.Lookup(componentName())
			require.True(t, ok)
			assert.Contains(t, out, canonical, "known marker key must be the canonical handle")
			assert.Contains(t, out, foreignHandle("elsewhere.Stranger", foreignStranger{}),
				"unknown marker key must pass through unchanged")
			assert.True(t, coord.Converted(s), "flag must be set after first resolve")

			// Second resolve returns the stored table verbatim.
			again, err := coord.Resolve(s)
			require.NoError(t, err)
			assert.True(t, remap.Equal(out, again))
		})
	}
}

func TestResolve_EmptyPreliminaryMapping(t *testing.T) {
	coord, _ := newCoordinator(t)
	s := seededScope(scope.NewRequest(), apis.Mapping{})

	out, err := coord.Resolve(s)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.True(t, coord.Converted(s))
}

func TestResolve_AbsentMappingStillSetsFlag(t *testing.T) {
	coord, _ := newCoordinator(t)
	s := scope.NewApplication()

	_, err := coord.Resolve(s)
	assert.ErrorIs(t, err, cache.ErrNoPreliminaryMapping)
	assert.True(t, coord.Converted(s), "flag is set before the mapping is inspected")
}

func TestResolve_MalformedMappingStillSetsFlag(t *testing.T) {
	coord, _ := newCoordinator(t)
	s := scope.NewRequest()
	s.Set(cache.MappingAttr, "not a mapping")

	_, err := coord.Resolve(s)
	assert.ErrorIs(t, err, cache.ErrBadMappingAttr)
	assert.True(t, coord.Converted(s))
}

func TestResolve_WriteBack(t *testing.T) {
	coord, reg := newCoordinator(t) // WriteBack defaults to true
	s := seededScope(scope.NewApplication(), prelimMapping())

	out, err := coord.Resolve(s)
	require.NoError(t, err)

	stored, ok := s.Get(cache.MappingAttr)
	require.True(t, ok)
	assert.True(t, remap.Equal(out, stored.(apis.Mapping)),
		"converted table must be written back into the scope")

	canonical, _ := reg.Lookup(componentName())
	assert.Contains(t, stored.(apis.Mapping), canonical)
}

func TestResolve_WriteBackDisabled(t *testing.T) {
	coord, _ := newCoordinator(t, config.WithWriteBack(false))
	prelim := prelimMapping()
	s := seededScope(scope.NewRequest(), prelim)

	out, err := coord.Resolve(s)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Only the flag was written; the scope still holds the scanner's table.
	stored, ok := s.Get(cache.MappingAttr)
	require.True(t, ok)
	assert.True(t, remap.Equal(prelim, stored.(apis.Mapping)))
	assert.True(t, coord.Converted(s))

	// And the next resolve therefore returns that unconverted table verbatim.
	again, err := coord.Resolve(s)
	require.NoError(t, err)
	assert.True(t, remap.Equal(prelim, again))
}

func TestConvertedAndMarkConverted(t *testing.T) {
	coord, _ := newCoordinator(t)
	s := scope.NewRequest()

	assert.False(t, coord.Converted(s))
	coord.MarkConverted(s)
	assert.True(t, coord.Converted(s))

	// Any non-absent value counts as true.
	s2 := scope.NewRequest()
	s2.Set(cache.ConvertedAttr, "yes")
	assert.True(t, coord.Converted(s2))
}

func TestResolve_NilScope(t *testing.T) {
	coord, _ := newCoordinator(t)
	_, err := coord.Resolve(nil)
	assert.ErrorIs(t, err, cache.ErrNilScope)
}
