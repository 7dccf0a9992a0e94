// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
)

//go:embed templates/*.html
var templateFS embed.FS

var layout = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Navigation entries of the admin dashboard.
var navigation = []NavItem{
	{Name: "overview", Verbose: "Overview", URL: "/admin/overview/"},
	{Name: "instances", Verbose: "Instances", URL: "/admin/instances/"},
	{Name: "networks", Verbose: "Networks", URL: "/admin/networks/"},
}

type NavItem struct {
	Name    string
	Verbose string
	URL     string
}

// A rendered page of a panel.
type Page struct {
	Title string
	// Name of the panel, highlighted in the navigation.
	Panel   string
	Notices []notices.Notice
	Content template.HTML
}

// Execute the named template from the given set into html.
func Fragment(t *template.Template, name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	//nolint:gosec // rendered by html/template
	return template.HTML(buf.String()), nil
}

// Render the page into the dashboard layout.
func Render(w http.ResponseWriter, code int, page Page) error {
	var buf bytes.Buffer
	data := struct {
		Page
		Navigation []NavItem
	}{page, navigation}
	if err := layout.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	// Nothing left to report if the client went away.
	_, _ = buf.WriteTo(w)
	return nil
}

// Create the notice queue for a page request, including the notices
// carried over by a redirect.
func NewQueue(w http.ResponseWriter, r *http.Request, mon notices.Monitor, page string) *notices.Queue {
	q := mon.NewQueue(page, Logger(r.Context()))
	q.Restore(notices.PopFlash(w, r))
	return q
}

// Redirect to the url and carry the queued notices over in a flash cookie.
func Redirect(w http.ResponseWriter, r *http.Request, url string, q *notices.Queue) {
	if err := notices.SetFlash(w, q.Notices()...); err != nil {
		Logger(r.Context()).Error("failed to set flash cookie", "error", err)
	}
	http.Redirect(w, r, url, http.StatusFound)
}
