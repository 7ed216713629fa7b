// SPDX-License-Identifier: MIT
package scanner

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options shared by the Scanner's
	// operations.
	Config struct {
		// Logger for Scanner messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool
	}

	// Option defines the Scanner functional option type.
	Option func(*Scanner)
)

var defConfig = DefConfig()

// DefConfig obtains the package's Scanner default options.
func DefConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Debug:  false,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}

// WithConfig configures the Scanner Config.
func WithConfig(cfg *Config) Option {
	return func(s *Scanner) {
		cfg.Validate()
		s.cfg = cfg
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Scanner) { s.cfg = &Config{Logger: logger, Debug: s.cfg.Debug} }
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option {
	return func(s *Scanner) { s.cfg = &Config{Logger: s.cfg.Logger, Debug: debug} }
}

// WithInput configures the shared host buffer to scan.
func WithInput(input string) Option {
	return func(s *Scanner) { s.buffer = []rune(input) }
}

// WithStart configures the rune offset scanning begins at, for calc entries
// embedded within a larger host buffer.
//
// The offset is applied after all options, so ordering relative to WithInput
// is irrelevant.
func WithStart(pos int) Option {
	return func(s *Scanner) { s.start = pos }
}
