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

package remx

import (
	"errors"

	"dirpx.dev/remx/apis"
	"dirpx.dev/remx/cache"
	"dirpx.dev/remx/config"
	"dirpx.dev/remx/loader"
	"dirpx.dev/remx/markers"
	"dirpx.dev/remx/registry"
)

var (
	// ErrNilLoader is returned when New receives a nil loader.
	ErrNilLoader = errors.New("remx: nil loader provided")
	// ErrEmptySeed is returned when New receives a seed with no baseline names.
	ErrEmptySeed = errors.New("remx: seed has no baseline names")
)

// Cache is the assembled remapping cache: one canonical registry plus the
// coordinator serving resolve calls for any scope variant. A Cache is
// immutable after New and safe for concurrent use.
type Cache struct {
	cfg   apis.Config
	reg   apis.Registry
	rep   registry.Report
	coord *cache.Coordinator
}

// New builds a Cache by resolving seed through l with the given options.
// The registry is built exactly once, here; a degraded build does not
// fail New, it surfaces in Report.
func New(l apis.Loader, seed apis.Seed, opts ...config.Option) (*Cache, error) {
	return newWithConfig(l, seed, config.NewConfig(opts...))
}

// Default builds a Cache over this framework's own markers and seed list.
func Default(opts ...config.Option) (*Cache, error) {
	cfg := config.NewConfig(opts...)
	l, err := loader.FromTypes(cfg, markers.All()...)
	if err != nil {
		return nil, err
	}
	return newWithConfig(l, markers.DefaultSeed(), cfg)
}

func newWithConfig(l apis.Loader, seed apis.Seed, cfg apis.Config) (*Cache, error) {
	if l == nil {
		return nil, ErrNilLoader
	}
	if len(seed.Baseline) == 0 {
		return nil, ErrEmptySeed
	}

	reg, rep := registry.Build(l, seed, cfg)
	coord, err := cache.New(reg, cfg)
	if err != nil {
		return nil, err
	}
	return &Cache{cfg: cfg, reg: reg, rep: rep, coord: coord}, nil
}

// Resolve returns the scope's canonicalized marker table, converting and
// memoizing it on first call per scope. See cache.Coordinator.Resolve.
func (c *Cache) Resolve(s apis.Scope) (apis.Mapping, error) {
	return c.coord.Resolve(s)
}

// Registry returns the canonical registry.
func (c *Cache) Registry() apis.Registry {
	return c.reg
}

// Report returns the registry build report.
func (c *Cache) Report() registry.Report {
	return c.rep
}

// Config returns the configuration the Cache was built with.
func (c *Cache) Config() apis.Config {
	return c.cfg
}

// Coordinator returns the scope cache coordinator, for hosts that drive
// the flag-gate steps themselves.
func (c *Cache) Coordinator() *cache.Coordinator {
	return c.coord
}
