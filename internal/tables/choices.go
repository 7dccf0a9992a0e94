// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package tables

import "strings"

type Choice struct {
	Value string
	Label string
}

// Labels shown for raw status codes.
type DisplayChoices []Choice

var (
	// Network and port status.
	StatusDisplayChoices = DisplayChoices{
		{"active", "Active"},
		{"build", "Build"},
		{"down", "Down"},
		{"error", "Error"},
	}
	AdminStateDisplayChoices = DisplayChoices{
		{"up", "UP"},
		{"down", "DOWN"},
	}
)

// Look up the label of the given value, ignoring case.
// Unknown values are returned as they are.
func (c DisplayChoices) Label(value string) string {
	lower := strings.ToLower(value)
	for _, choice := range c {
		if strings.ToLower(choice.Value) == lower {
			return choice.Label
		}
	}
	return value
}
