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

// Package manifest loads seed lists from YAML. Hosts that version their
// marker sets outside the binary ship a manifest next to the deployment:
//
//	baseline:
//	  - example.com/faces/markers.Component
//	  - example.com/faces/markers.Converter
//	optional:
//	  - example.com/faces/markers.ResourceResolver
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dirpx.dev/remx/apis"
)

var (
	// ErrEmptyBaseline indicates a manifest without baseline names.
	ErrEmptyBaseline = errors.New("remx(manifest): baseline list is empty")
	// ErrBlankName indicates a blank entry in either list.
	ErrBlankName = errors.New("remx(manifest): blank marker name")
	// ErrDuplicateName indicates a name listed more than once.
	ErrDuplicateName = errors.New("remx(manifest): duplicate marker name")
)

type document struct {
	Baseline []string `yaml:"baseline"`
	Optional []string `yaml:"optional"`
}

// Load reads and parses the manifest at path.
func Load(path string) (apis.Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return apis.Seed{}, fmt.Errorf("remx(manifest): %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a manifest from r and validates it. Order within each
// list is preserved: it is the registry's resolution order.
func Parse(r io.Reader) (apis.Seed, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return apis.Seed{}, fmt.Errorf("remx(manifest): %w", err)
	}

	if len(doc.Baseline) == 0 {
		return apis.Seed{}, ErrEmptyBaseline
	}
	seen := make(map[string]struct{}, len(doc.Baseline)+len(doc.Optional))
	for _, name := range append(append([]string{}, doc.Baseline...), doc.Optional...) {
		if strings.TrimSpace(name) == "" {
			return apis.Seed{}, ErrBlankName
		}
		if _, dup := seen[name]; dup {
			return apis.Seed{}, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		seen[name] = struct{}{}
	}

	return apis.Seed{Baseline: doc.Baseline, Optional: doc.Optional}, nil
}
