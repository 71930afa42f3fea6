// SPDX-License-Identifier: MIT
// Package: homology/chain
//
// options.go - functional options for complex construction.
//
// Contract:
//   • Options are functional (type Option func(*options)).
//   • Option constructors PANIC on meaningless inputs (nil logger);
//     New and Compute never panic.
//   • Defaults live in constants below and in defaultOptions.

package chain

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultChecked enables the ∂ₙ₋₁∘∂ₙ = 0 verification in New.
const DefaultChecked = true

// Option customizes New.
type Option func(*options)

type options struct {
	checked bool
	logger  *log.Logger
}

func defaultOptions() options {
	return options{
		checked: DefaultChecked,
		logger:  log.New(io.Discard), // silent unless WithLogger is given
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithUnchecked skips the ∂ₙ₋₁∘∂ₙ = 0 verification. Shapes are still checked.
// Only use it for boundaries that are correct by construction; a complex that
// would have failed validation yields meaningless homology, not an error.
func WithUnchecked() Option {
	return func(o *options) {
		o.checked = false
	}
}

// WithLogger routes per-dimension debug traces (ranks, nullities, torsion)
// to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("chain: WithLogger(nil)")
	}

	return func(o *options) {
		o.logger = l
	}
}
