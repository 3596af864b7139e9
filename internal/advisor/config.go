// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package advisor

import "fmt"

// DefaultMaxResults caps ranked output at the six strongest
// candidates unless configured otherwise.
const DefaultMaxResults = 6

// Config controls engine behavior.
type Config struct {
	// MaxResults caps the number of ranked candidates returned per
	// request. Zero disables the cap; negative values are invalid.
	MaxResults int `koanf:"max_results"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{MaxResults: DefaultMaxResults}
}

// Validate checks config invariants.
func (c *Config) Validate() error {
	if c.MaxResults < 0 {
		return fmt.Errorf("max_results must be >= 0, got %d", c.MaxResults)
	}
	return nil
}
