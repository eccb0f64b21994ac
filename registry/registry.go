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

// Package registry builds and serves the canonical marker registry: the
// process-wide name->handle table resolved through the host's own loading
// context. Build runs once per process; the result is immutable and its
// lookups are lock-free.
package registry

import (
	"errors"

	"dirpx.dev/remx/apis"
	"dirpx.dev/remx/config"
)

// ErrNilLoader is returned when Build receives a nil loader.
var ErrNilLoader = errors.New("remx(registry): nil loader provided")

// Report describes how a build went. Builds never fail outright: whatever
// resolved before a failure stays in the registry, and the Report is the
// only place the degradation is visible.
type Report struct {
	// Added lists names that made it into the registry, in resolution order.
	Added []string
	// SkippedOptional lists optional names absent from the loading context
	// or resolving to non-marker types.
	SkippedOptional []string
	// Failed is the first name whose resolution failed unexpectedly,
	// or "" for a clean build.
	Failed string
	// Err is the failure that stopped the build, or nil.
	Err error
}

// Complete reports whether every seed name was either added or skipped
// as an absent optional.
func (r Report) Complete() bool {
	return r.Err == nil
}

// Build resolves the seed through l and returns the canonical registry.
//
// Baseline names resolve strictly in order and are inserted without any
// marker check. The first error on a baseline name (not found included)
// abandons the rest of the build, baseline and optional alike; entries
// added before the failure are retained and the registry stays usable.
//
// Optional names are attempted only after every baseline name, one at a
// time: an absent type skips that entry alone, as does a type that is not
// a marker. Any other error abandons the remaining optional names.
func Build(l apis.Loader, seed apis.Seed, cfg apis.Config) (apis.Registry, Report) {
	log := cfg.Logger
	if log == nil {
		log = config.DiscardLogger()
	}

	reg := &registry{byName: make(map[string]apis.Marker, len(seed.Baseline)+len(seed.Optional))}
	var rep Report

	if l == nil {
		rep.Err = ErrNilLoader
		log.Warn("remx registry build abandoned", "err", rep.Err)
		return reg, rep
	}

	for _, name := range seed.Baseline {
		m, err := l.Load(name)
		if err != nil {
			rep.Failed = name
			rep.Err = err
			log.Warn("remx registry build abandoned",
				"marker", name, "added", len(rep.Added), "err", err)
			return reg, rep
		}
		reg.byName[name] = m
		rep.Added = append(rep.Added, name)
	}

	for _, name := range seed.Optional {
		m, err := l.Load(name)
		if errors.Is(err, apis.ErrMarkerNotFound) {
			rep.SkippedOptional = append(rep.SkippedOptional, name)
			continue
		}
		if err != nil {
			rep.Failed = name
			rep.Err = err
			log.Warn("remx registry build abandoned",
				"marker", name, "added", len(rep.Added), "err", err)
			return reg, rep
		}
		if !apis.IsMarkerType(m.Type) {
			rep.SkippedOptional = append(rep.SkippedOptional, name)
			continue
		}
		reg.byName[name] = m
		rep.Added = append(rep.Added, name)
	}

	return reg, rep
}

// registry is the immutable map-backed Registry. No writes happen after
// Build returns, so reads need no synchronization.
type registry struct {
	byName map[string]apis.Marker
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// Lookup returns the canonical handle for a marker name, if present.
func (r *registry) Lookup(name string) (apis.Marker, bool) {
	m, ok := r.byName[name]
	return m, ok
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Marker {
	entries := make([]apis.Marker, 0, len(r.byName))
	for _, m := range r.byName {
		entries = append(entries, m)
	}
	return entries
}

// Count returns the number of canonical entries.
func (r *registry) Count() int {
	return len(r.byName)
}
