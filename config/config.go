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

package config

import (
	"io"
	"log/slog"

	"dirpx.dev/remx/apis"
)

const (
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultWriteBack represents the default for WriteBack.
	// When true, the coordinator persists the canonicalized mapping into
	// the scope on a cache miss.
	DefaultWriteBack = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.Logger == nil {
		cfg.Logger = DiscardLogger()
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxUnwrap: DefaultMaxUnwrap,
		WriteBack: DefaultWriteBack,
		Logger:    DiscardLogger(),
	}
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxUnwrap sets the MaxUnwrap option.
// A non-positive value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithWriteBack sets the WriteBack option.
func WithWriteBack(writeBack bool) Option {
	return func(c *apis.Config) {
		c.WriteBack = writeBack
	}
}

// WithLogger sets the diagnostics logger. A nil logger resets to discard.
func WithLogger(l *slog.Logger) Option {
	return func(c *apis.Config) {
		if l == nil {
			c.Logger = DiscardLogger()
			return
		}
		c.Logger = l
	}
}
