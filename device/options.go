// SPDX-License-Identifier: MIT

package device

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Option configures a backend.
type Option func(*options)

type options struct {
	logger     zerolog.Logger        // default zerolog.Nop()
	registerer prometheus.Registerer // nil ⇒ metrics are collected but not registered
}

// WithLogger sets the logger used for upload diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegisterer registers the backend metrics with reg. Registering two
// backends on the same registerer panics (duplicate collectors), as with
// any promauto collector.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

func gatherOptions(opts ...Option) options {
	o := options{logger: zerolog.Nop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
