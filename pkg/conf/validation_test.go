// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package conf

import "testing"

func validConfig() Config {
	return Config{
		APIConfig:        APIConfig{Port: 8080},
		MonitoringConfig: MonitoringConfig{Port: 2112},
		KeystoneConfig: KeystoneConfig{
			URL:           "http://keystone/v3",
			OSUsername:    "admin",
			OSPassword:    "secret",
			OSProjectName: "admin",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing keystone url", func(c *Config) { c.KeystoneConfig.URL = "" }, true},
		{"missing password", func(c *Config) { c.OSPassword = "" }, true},
		{"missing project", func(c *Config) { c.OSProjectName = "" }, true},
		{"invalid api port", func(c *Config) { c.APIConfig.Port = 0 }, true},
		{"invalid monitoring port", func(c *Config) { c.MonitoringConfig.Port = -1 }, true},
		{"same ports", func(c *Config) { c.MonitoringConfig.Port = 8080 }, true},
		{"negative page size", func(c *Config) { c.PageSize = -5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateDefaults(t *testing.T) {
	c := validConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.PageSize != defaultPageSize {
		t.Errorf("expected default page size %d, got %d", defaultPageSize, c.PageSize)
	}
	if c.KeystoneConfig.Availability != "public" {
		t.Errorf("expected default availability public, got %q", c.KeystoneConfig.Availability)
	}
}
