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

import "errors"

// ErrMarkerNotFound is returned by a Loader when the named marker type
// does not exist in its loading context. Registry construction treats it
// as recoverable for optional seed entries only.
var ErrMarkerNotFound = errors.New("remx: marker type not found in loading context")

// Loader resolves marker type names inside one loading context. The
// registry builder drives a Loader over the seed list; everything else
// consumes the resulting handles.
type Loader interface {
	// Load resolves name to a handle within this context. It returns
	// ErrMarkerNotFound when the context has no type by that name.
	Load(name string) (Marker, error)
}
