// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package conf

import (
	"errors"
	"fmt"
	"log/slog"
)

const defaultPageSize = 20

// Check if the configuration is valid and fill in defaults.
func (c *Config) Validate() error {
	if c.KeystoneConfig.URL == "" {
		return errors.New("keystone url is required")
	}
	if c.OSUsername == "" || c.OSPassword == "" {
		return errors.New("keystone username and password are required")
	}
	if c.OSProjectName == "" {
		return errors.New("keystone project name is required")
	}
	if c.KeystoneConfig.Availability == "" {
		slog.Info("no availability configured, using public endpoints")
		c.KeystoneConfig.Availability = "public"
	}
	if c.APIConfig.Port <= 0 {
		return fmt.Errorf("invalid api port: %d", c.APIConfig.Port)
	}
	if c.MonitoringConfig.Port <= 0 {
		return fmt.Errorf("invalid monitoring port: %d", c.MonitoringConfig.Port)
	}
	if c.APIConfig.Port == c.MonitoringConfig.Port {
		return errors.New("api and monitoring must listen on different ports")
	}
	switch {
	case c.PageSize == 0:
		c.PageSize = defaultPageSize
	case c.PageSize < 0:
		return fmt.Errorf("invalid page size: %d", c.PageSize)
	}
	return nil
}
