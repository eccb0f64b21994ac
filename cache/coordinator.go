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

// Package cache memoizes the canonicalized marker table per scope. The
// scanner stores a preliminary table in the scope before the first
// resolve; the coordinator converts it at most once per scope, gated by a
// converted-flag attribute living next to the table.
package cache

import (
	"errors"
	"sync"

	"dirpx.dev/remx/apis"
	"dirpx.dev/remx/config"
	"dirpx.dev/remx/remap"
)

const (
	// MappingAttr names the scope attribute holding the marker table.
	// The scanning collaborator writes it before any resolve.
	MappingAttr = "dirpx.remx.MARKER_TARGETS"
	// ConvertedAttr names the sentinel attribute marking a scope as
	// already converted. Any non-absent value counts as true.
	ConvertedAttr = "dirpx.remx.MARKER_TARGETS_CONVERTED"
)

var (
	// ErrNilRegistry is returned when New receives a nil registry.
	ErrNilRegistry = errors.New("remx(cache): nil registry provided")
	// ErrNilScope is returned when Resolve receives a nil scope.
	ErrNilScope = errors.New("remx(cache): nil scope provided")
	// ErrNoPreliminaryMapping indicates the scanner never populated the
	// scope. This is a precondition violation by the host, not a state
	// the coordinator recovers from.
	ErrNoPreliminaryMapping = errors.New("remx(cache): scope has no preliminary marker mapping")
	// ErrBadMappingAttr indicates the mapping attribute holds a value of
	// an unexpected type.
	ErrBadMappingAttr = errors.New("remx(cache): mapping attribute holds unexpected value")
)

// Coordinator serves resolve calls for any scope variant against one
// canonical registry.
type Coordinator struct {
	reg apis.Registry
	cfg apis.Config

	// mu serializes first conversions against flag-present reads, so a
	// caller never observes the flag set while the scope still holds the
	// unconverted table mid-write-back.
	mu sync.RWMutex
}

// New creates a Coordinator over the given registry. Zero-value knobs in
// cfg fall back to defaults.
func New(reg apis.Registry, cfg apis.Config) (*Coordinator, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if cfg.Logger == nil {
		cfg.Logger = config.DiscardLogger()
	}
	return &Coordinator{reg: reg, cfg: cfg}, nil
}

// Resolve returns the scope's canonicalized marker table.
//
// When the converted flag is present the stored table is returned
// verbatim, with no re-validation. Otherwise the flag is set first,
// whatever the mapping attribute holds, and the preliminary table is
// converted; with WriteBack enabled the result is also stored back into
// the scope.
//
// First conversions are serialized against every other resolve on this
// Coordinator: a caller that finds the flag set while another caller is
// still converting waits for that conversion (write-back included) to
// finish. Concurrent first resolves therefore never observe the
// preliminary table, and the conversion runs once per scope.
func (c *Coordinator) Resolve(s apis.Scope) (apis.Mapping, error) {
	if s == nil {
		return nil, ErrNilScope
	}

	c.mu.RLock()
	if c.Converted(s) {
		defer c.mu.RUnlock()
		return c.stored(s)
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have converted while we waited for the lock.
	if c.Converted(s) {
		return c.stored(s)
	}

	// Flag first: the scope is marked converted even when the mapping
	// attribute turns out to be absent or malformed.
	c.MarkConverted(s)

	v, ok := s.Get(MappingAttr)
	if !ok || v == nil {
		c.cfg.Logger.Warn("remx resolve before scan", "attr", MappingAttr)
		return nil, ErrNoPreliminaryMapping
	}
	prelim, ok := v.(apis.Mapping)
	if !ok {
		return nil, ErrBadMappingAttr
	}

	converted := remap.Convert(prelim, c.reg)
	if c.cfg.WriteBack {
		s.Set(MappingAttr, converted)
	}
	return converted, nil
}

// Converted reports whether the scope's converted flag is set. Any
// non-absent value counts as true. Converted does not take the
// Coordinator's resolve serialization; hosts driving the steps
// themselves own the ordering.
func (c *Coordinator) Converted(s apis.Scope) bool {
	_, ok := s.Get(ConvertedAttr)
	return ok
}

// MarkConverted sets the scope's converted flag. Like Converted, it runs
// outside the resolve serialization.
func (c *Coordinator) MarkConverted(s apis.Scope) {
	s.Set(ConvertedAttr, true)
}

// stored returns the mapping attribute as-is for an already-converted scope.
func (c *Coordinator) stored(s apis.Scope) (apis.Mapping, error) {
	v, ok := s.Get(MappingAttr)
	if !ok || v == nil {
		return nil, ErrNoPreliminaryMapping
	}
	m, ok := v.(apis.Mapping)
	if !ok {
		return nil, ErrBadMappingAttr
	}
	return m, nil
}
