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

// Package scope provides the two attribute-store variants the host hands
// to the coordinator: an application-lifetime store and a
// request-lifetime store. Both expose identical Get/Set semantics over
// string-named attributes; writes are last-write-wins.
package scope

import (
	"sync"

	"github.com/google/uuid"

	"dirpx.dev/remx/apis"
)

// Application is a process/deployment-lifetime attribute store. It is
// written to by many request threads over its whole life, so it is backed
// by a sync.Map.
type Application struct {
	id    string
	attrs sync.Map
}

// Ensure Application implements apis.Scope.
var _ apis.Scope = (*Application)(nil)

// NewApplication creates an empty application scope with a fresh instance ID.
func NewApplication() *Application {
	return &Application{id: uuid.NewString()}
}

// ID returns the scope's instance identifier.
func (a *Application) ID() string {
	return a.id
}

// Get returns the attribute value by name, or false when absent.
func (a *Application) Get(name string) (any, bool) {
	return a.attrs.Load(name)
}

// Set stores the attribute value under name, replacing any prior value.
func (a *Application) Set(name string, value any) {
	a.attrs.Store(name, value)
}

// Request is a request-processing-lifetime attribute store. Attribute
// churn is short-lived and read-mostly, so a plain map behind an RWMutex
// is enough.
type Request struct {
	id string

	mu    sync.RWMutex
	attrs map[string]any
}

// Ensure Request implements apis.Scope.
var _ apis.Scope = (*Request)(nil)

// NewRequest creates an empty request scope with a fresh instance ID.
func NewRequest() *Request {
	return &Request{
		id:    uuid.NewString(),
		attrs: make(map[string]any),
	}
}

// ID returns the scope's instance identifier.
func (r *Request) ID() string {
	return r.id
}

// Get returns the attribute value by name, or false when absent.
func (r *Request) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.attrs[name]
	return v, ok
}

// Set stores the attribute value under name, replacing any prior value.
func (r *Request) Set(name string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attrs[name] = value
}
