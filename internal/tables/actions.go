// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package tables

import (
	"bytes"
	"html/template"
	"net/http"
)

// Action that can be applied to a single row.
type Action[T any] struct {
	Name    string
	Verbose string
	// GET actions render as link, others as form with a button.
	Method string
	URL    func(row T) string
	// Optional, the action is hidden if it returns false.
	Allowed func(row T) bool
	Danger  bool
}

type actionView struct {
	Name    string
	Verbose string
	URL     string
	Form    bool
	Class   string
}

// Render the actions allowed for the row as html fragment.
func RenderRowActions[T any](actions []Action[T], row T) (template.HTML, error) {
	var views []actionView
	for _, action := range actions {
		if action.Allowed != nil && !action.Allowed(row) {
			continue
		}
		class := "btn btn-small"
		if action.Danger {
			class += " btn-danger"
		}
		views = append(views, actionView{
			Name:    action.Name,
			Verbose: action.Verbose,
			URL:     action.URL(row),
			Form:    action.Method != "" && action.Method != http.MethodGet,
			Class:   class,
		})
	}
	if len(views) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "actions.html", views); err != nil {
		return "", err
	}
	//nolint:gosec // rendered by html/template
	return template.HTML(buf.String()), nil
}
