// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package conf

import (
	"testing"
)

func TestMergeMaps(t *testing.T) {
	// Test basic merge
	dst := map[string]any{
		"a": "original",
		"b": map[string]any{"nested": "value"},
	}
	src := map[string]any{
		"a": "overridden",
		"c": "new",
	}

	mergeMaps(dst, src)

	if dst["a"] != "overridden" {
		t.Errorf("Expected 'a' to be 'overridden', got %v", dst["a"])
	}
	if dst["c"] != "new" {
		t.Errorf("Expected 'c' to be 'new', got %v", dst["c"])
	}

	// Test nested merge
	dst = map[string]any{
		"nested": map[string]any{
			"keep":     "original",
			"override": "old",
		},
	}
	src = map[string]any{
		"nested": map[string]any{
			"override": "new",
			"add":      "added",
		},
	}

	mergeMaps(dst, src)

	nested := dst["nested"].(map[string]any)
	if nested["keep"] != "original" {
		t.Errorf("Expected nested 'keep' to be 'original', got %v", nested["keep"])
	}
	if nested["override"] != "new" {
		t.Errorf("Expected nested 'override' to be 'new', got %v", nested["override"])
	}
	if nested["add"] != "added" {
		t.Errorf("Expected nested 'add' to be 'added', got %v", nested["add"])
	}

	// Test nil value handling
	dst = map[string]any{"key": "value"}
	src = map[string]any{"key": nil}

	mergeMaps(dst, src)

	if dst["key"] != "value" {
		t.Errorf("Expected 'key' to remain 'value' when src is nil, got %v", dst["key"])
	}
}

func TestReadRawConfigFromBytes(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"json", `{"api": {"port": 8080}, "keystone": {"url": "http://keystone"}}`},
		{"yaml", "api:\n  port: 8080\nkeystone:\n  url: http://keystone\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := readRawConfigFromBytes([]byte(tt.data))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			c := newConfigFromMaps[Config](raw, map[string]any{})
			if c.APIConfig.Port != 8080 {
				t.Errorf("expected api port 8080, got %d", c.APIConfig.Port)
			}
			if c.KeystoneConfig.URL != "http://keystone" {
				t.Errorf("expected keystone url, got %q", c.KeystoneConfig.URL)
			}
		})
	}
}

func TestNewConfigFromMaps_SecretsOverride(t *testing.T) {
	base, err := readRawConfigFromBytes([]byte(`{
		"keystone": {"url": "http://keystone", "username": "dashboard", "password": ""},
		"dashboard": {"pageSize": 50}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	secrets, err := readRawConfigFromBytes([]byte(`{"keystone": {"password": "secret"}}`))
	if err != nil {
		t.Fatal(err)
	}
	c := newConfigFromMaps[Config](base, secrets)
	if c.OSPassword != "secret" {
		t.Errorf("expected password from secrets, got %q", c.OSPassword)
	}
	if c.OSUsername != "dashboard" {
		t.Errorf("expected username to be kept, got %q", c.OSUsername)
	}
	if c.PageSize != 50 {
		t.Errorf("expected page size 50, got %d", c.PageSize)
	}
}
