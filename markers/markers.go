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

// Package markers defines the host framework's own extension-point marker
// types and the seed list that resolves them. These are the canonical
// representations: handles resolved from this package are authoritative
// when a scanner's table is reconciled across loading contexts.
package markers

import (
	"reflect"

	"dirpx.dev/remx/apis"
)

// Baseline markers, available since the framework's baseline version.
// Seed order below follows the declaration order here and must not change:
// it is the resolution order hosts depend on.
type (
	// Component marks a UI component extension point.
	Component struct{}
	// Converter marks a value converter extension point.
	Converter struct{}
	// Validator marks a validation extension point.
	Validator struct{}
	// Renderer marks a component renderer extension point.
	Renderer struct{}
	// NamedEvent marks an application event extension point.
	NamedEvent struct{}
	// Behavior marks a client behavior extension point.
	Behavior struct{}
	// BehaviorRenderer marks a behavior renderer extension point.
	BehaviorRenderer struct{}
)

// ResourceResolver marks a resource resolution extension point. It was
// introduced after the baseline version, so older implementations may not
// ship it; registry builds resolve it defensively.
type ResourceResolver struct{}

func (Component) ExtensionMarker() {}

func (Converter) ExtensionMarker() {}

func (Validator) ExtensionMarker() {}

func (Renderer) ExtensionMarker() {}

func (NamedEvent) ExtensionMarker() {}

func (Behavior) ExtensionMarker() {}

func (BehaviorRenderer) ExtensionMarker() {}

func (ResourceResolver) ExtensionMarker() {}

// All returns one value per marker type, baseline first, in seed order.
func All() []any {
	return []any{
		Component{},
		Converter{},
		Validator{},
		Renderer{},
		NamedEvent{},
		Behavior{},
		BehaviorRenderer{},
		ResourceResolver{},
	}
}

// DefaultSeed returns the framework's seed list: every baseline marker
// name in resolution order, then the optional later-version names.
func DefaultSeed() apis.Seed {
	return apis.Seed{
		Baseline: []string{
			nameOf(Component{}),
			nameOf(Converter{}),
			nameOf(Validator{}),
			nameOf(Renderer{}),
			nameOf(NamedEvent{}),
			nameOf(Behavior{}),
			nameOf(BehaviorRenderer{}),
		},
		Optional: []string{
			nameOf(ResourceResolver{}),
		},
	}
}

func nameOf(v any) string {
	t := reflect.TypeOf(v)
	return t.PkgPath() + "." + t.Name()
}
