// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package tables

import "testing"

func TestDisplayChoices_Label(t *testing.T) {
	tests := []struct {
		choices DisplayChoices
		value   string
		want    string
	}{
		{StatusDisplayChoices, "ACTIVE", "Active"},
		{StatusDisplayChoices, "build", "Build"},
		{StatusDisplayChoices, "DOWN", "Down"},
		{StatusDisplayChoices, "ERROR", "Error"},
		{StatusDisplayChoices, "UNKNOWN_STATE", "UNKNOWN_STATE"},
		{AdminStateDisplayChoices, "UP", "UP"},
		{AdminStateDisplayChoices, "down", "DOWN"},
		{AdminStateDisplayChoices, "", ""},
	}
	for _, tt := range tests {
		if got := tt.choices.Label(tt.value); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
