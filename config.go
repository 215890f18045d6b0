// SPDX-License-Identifier: MIT
package tl

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// Config defines configuration options for the [BuildSource], [Catalog] & [TokenizeAll]
// operations.
type Config struct {
	// Logger for package messages.
	//
	// Preferring a public field to allow for sharing.
	Logger logrus.FieldLogger
	Debug  bool

	// Workers caps the amount of sources tokenized concurrently.
	Workers int
}

var defConfig = DefConfig()

// DefConfig obtains the package's default options.
func DefConfig() *Config {
	return &Config{
		Logger:  logrus.New(),
		Debug:   false,
		Workers: runtime.NumCPU(),
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.Workers < 1 {
		c.Workers = runtime.NumCPU()
	}
}
