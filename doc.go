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

// Package remx reconciles marker-type identity across loading contexts.
//
// A pluggable host can end up with two loaded representations of the same
// logical extension-point marker: one resolved through the host's own
// context, one resolved by whatever context the deployment's scanner ran
// in. The representations share a fully-qualified name but are not
// reference-equal, so a table the scanner keyed by its own handles is
// useless for the host's identity-keyed lookups.
//
// remx fixes the keys, once per scope. It does not scan, does not pick
// implementations, and does not own the scope storage; it only
// reconciles identity and caches the reconciliation.
//
// # Design
//
// Three pieces:
//
//   - Canonical registry (registry.Build): a name->handle table resolved
//     through the host's loading context from an ordered seed list.
//     Baseline names must all resolve or the build stops where it is,
//     keeping what it has; optional later-version names are resolved
//     defensively, each absence skipping that entry alone. Built once,
//     immutable after, observable via a Report; a degraded registry
//     still serves lookups.
//
//   - Remapper (remap.Convert): a pure function rewriting a preliminary
//     table's keys to canonical handles by name, passing unknown names
//     through untouched. Values are never transformed.
//
//   - Coordinator (cache.Coordinator): per-scope memoization behind a
//     converted-flag attribute stored next to the table. Flag present:
//     return the stored table verbatim. Flag absent: set it, convert,
//     optionally write the result back, return it.
//
// The root package wires the three explicitly:
//
//	c, err := remx.Default()
//	...
//	table, err := c.Resolve(scope)
//
// # Concurrency model
//
// The registry is immutable after New and read lock-free. Scope stores
// synchronize their own attributes. Resolve serializes first conversions
// against every other resolve on the same Cache, so racing callers wait
// for the in-flight conversion rather than observing the preliminary
// table, and the conversion runs once per scope. Convert itself is pure;
// the registry can be shared across any number of resolvers.
//
// # Scope
//
// remx is intentionally small. Discovery, slot selection, and scope
// lifecycle belong to the host; remx only answers "give me this scope's
// marker table, keyed the way my context loaded the markers."
package remx
