// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"time"
)

const (
	defaultTokenIssuer   = "noteboard"
	defaultTokenDuration = 24 * time.Hour
	defaultHTTPAddress   = "localhost:8080"
)

// applyDefaults fills in values that have safe fallbacks. Secrets and the
// database DSN have no fallback and are checked by validate instead.
func (c *StructuredConfig) applyDefaults() {
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
}

// validate checks that all required configuration values are present after
// merging every source.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Storage.DB.DSN == "" {
		errs = append(errs, errNoDatabaseDSN)
	}
	if c.App.TokenSignKey == "" {
		errs = append(errs, errNoTokenSignKey)
	}

	return errors.Join(errs...)
}
