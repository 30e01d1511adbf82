// File: pool/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

const defaultStoreName = "ringstore"

type storeConfig struct {
	name string
}

func defaultStoreConfig() storeConfig {
	return storeConfig{name: defaultStoreName}
}

// StoreOption customizes store initialization.
type StoreOption func(*storeConfig)

// WithName sets the label reported by Stats and debug probes.
func WithName(name string) StoreOption {
	return func(c *storeConfig) {
		if name != "" {
			c.name = name
		}
	}
}
