// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package conf

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Load environment variables from the given dotenv files, if they exist.
// Variables already present in the environment are not overwritten.
func LoadDotenv(filenames ...string) error {
	for _, filename := range filenames {
		err := godotenv.Load(filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		slog.Info("loaded environment from dotenv file", "file", filename)
	}
	return nil
}

// Override the keystone configuration with the OS_* variables known from
// the openstack cli, if they are set.
func (c *KeystoneConfig) OverrideFromEnv() {
	overrides := []struct {
		key   string
		field *string
	}{
		{"OS_AUTH_URL", &c.URL},
		{"OS_INTERFACE", &c.Availability},
		{"OS_USERNAME", &c.OSUsername},
		{"OS_PASSWORD", &c.OSPassword},
		{"OS_PROJECT_NAME", &c.OSProjectName},
		{"OS_USER_DOMAIN_NAME", &c.OSUserDomainName},
		{"OS_PROJECT_DOMAIN_NAME", &c.OSProjectDomainName},
	}
	for _, o := range overrides {
		if value := os.Getenv(o.key); value != "" {
			*o.field = value
		}
	}
}
