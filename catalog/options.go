// SPDX-License-Identifier: MIT

package catalog

import "github.com/katalvlaran/homology/chain"

// Option customizes a constructor run.
type Option func(*config)

// config is the resolved set of options handed to every Constructor.
type config struct {
	reduced   bool
	chainOpts []chain.Option
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithReduced replaces the empty ∂₀ by the augmentation C₀ → Z that sends
// every vertex to 1, so that the complex computes reduced homology.
func WithReduced() Option {
	return func(c *config) {
		c.reduced = true
	}
}

// WithChainOptions forwards opts to chain.New when the complex is built with
// Build. Panics on a nil option.
func WithChainOptions(opts ...chain.Option) Option {
	for _, o := range opts {
		if o == nil {
			panic("catalog: WithChainOptions(nil)")
		}
	}

	return func(c *config) {
		c.chainOpts = append(c.chainOpts, opts...)
	}
}
