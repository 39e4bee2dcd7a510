// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cmdutil provides the configuration, logging and build
// information support used by the cal command. cal accepts no flags and
// hence all of its configuration is read from the environment.
package cmdutil

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config represents the environment variables that affect cal.
type Config struct {
	// POSIX locale variables in order of precedence, they determine
	// the language used for month names.
	LCAll  string `env:"LC_ALL"`
	LCTime string `env:"LC_TIME"`
	Lang   string `env:"LANG"`

	Logging LoggingConfig `envPrefix:"CAL_LOG_"`
}

// LoadConfig parses the supplied environment, in the key=value form
// returned by os.Environ.
func LoadConfig(environ []string) (Config, error) {
	var cfg Config
	opts := env.Options{Environment: env.ToMap(environ)}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}
