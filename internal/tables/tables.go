// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package tables

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Query parameter that carries the pagination marker.
const MarkerParam = "marker"

// Css classes of a regular data cell.
const defaultCellClass = "sortable normal_column"

type Column[T any] struct {
	Name    string
	Verbose string
	// Text shown in the cell.
	Value func(row T) string
	// Optional link target of the cell.
	Link func(row T) string
}

// Table of rows with the same columns and row actions.
type Table[T any] struct {
	Name       string
	Columns    []Column[T]
	RowActions []Action[T]
	// Actions that are not bound to a row, e.g. "Create Network".
	TableActions []Link
	// Identifies a row, used as pagination marker.
	RowID func(row T) string
	// Set if more rows are available after the last one.
	More bool
	// Url of the page showing the table, used for the "next" link.
	BaseURL string
	// Text shown if there are no rows.
	Empty string
}

type Link struct {
	Verbose string
	URL     string
}

type Cell struct {
	Class string
	Value string
	URL   string
}

type RowView struct {
	ID      string
	Cells   []Cell
	Actions template.HTML
}

// Rendering input for one table.
type View struct {
	Name         string
	Headers      []string
	Rows         []RowView
	TableActions []Link
	NextURL      string
	Empty        string
	HasActions   bool
}

// Compute the cells of all rows.
func (t *Table[T]) View(rows []T) (View, error) {
	view := View{
		Name:         t.Name,
		TableActions: t.TableActions,
		Empty:        t.Empty,
		HasActions:   len(t.RowActions) > 0,
	}
	if view.Empty == "" {
		view.Empty = "No items to display."
	}
	for _, col := range t.Columns {
		view.Headers = append(view.Headers, col.Verbose)
	}
	for _, row := range rows {
		rv := RowView{}
		if t.RowID != nil {
			rv.ID = t.RowID(row)
		}
		for _, col := range t.Columns {
			cell := Cell{Class: defaultCellClass, Value: col.Value(row)}
			if col.Link != nil {
				cell.URL = col.Link(row)
			}
			rv.Cells = append(rv.Cells, cell)
		}
		if view.HasActions {
			actions, err := RenderRowActions(t.RowActions, row)
			if err != nil {
				return View{}, err
			}
			rv.Actions = actions
		}
		view.Rows = append(view.Rows, rv)
	}
	if t.More && len(rows) > 0 && t.RowID != nil {
		query := url.Values{MarkerParam: {t.RowID(rows[len(rows)-1])}}
		view.NextURL = t.BaseURL + "?" + query.Encode()
	}
	return view, nil
}

// Render the rows as html table.
func (t *Table[T]) Render(rows []T) (template.HTML, error) {
	view, err := t.View(rows)
	if err != nil {
		return "", err
	}
	return view.HTML()
}

// Render the table as html fragment.
func (v View) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "table.html", v); err != nil {
		return "", err
	}
	//nolint:gosec // rendered by html/template
	return template.HTML(buf.String()), nil
}
