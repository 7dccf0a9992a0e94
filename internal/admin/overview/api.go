// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package overview

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/internal/tables"
	"github.com/cobaltcore-dev/admin-dashboard/internal/web"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const IndexURL = "/admin/overview/"

// Overview panel with the usage of all projects.
type Panel struct {
	Compute    openstack.ComputeAPI
	Identity   openstack.IdentityAPI
	Networking openstack.NetworkingAPI
	Notices    notices.Monitor
	Monitor    *web.APIMonitor
	// Clock used for the default period, time.Now if unset.
	Now func() time.Time
}

func (p *Panel) Init(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin/overview/{$}", p.index)
}

func (p *Panel) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// Link to the report of the same period in another format.
func formatURL(period Period, format string) string {
	values := url.Values{}
	values.Set("start", period.Start.Format(DateLayout))
	values.Set("end", period.End.Format(DateLayout))
	values.Set("format", format)
	return IndexURL + "?" + values.Encode()
}

func (p *Panel) index(w http.ResponseWriter, r *http.Request) {
	callback := p.Monitor.Callback(w, r, IndexURL)
	query := r.URL.Query()
	format := query.Get("format")
	var q *notices.Queue
	if format == "csv" || format == "xlsx" {
		// Downloads leave the flash for the next page.
		q = p.Notices.NewQueue("overview_export", web.Logger(r.Context()))
	} else {
		q = web.NewQueue(w, r, p.Notices, "overview")
	}
	period := parsePeriod(query, p.now(), q)
	report := NewGlobalUsage(p.Compute, p.Identity, p.Networking, q, period).Report(r.Context())
	report.Notices = q.Notices()

	switch format {
	case "csv":
		p.download(callback, w, "text/csv; charset=utf-8", "usage.csv", func(buf *bytes.Buffer) error {
			return WriteCSV(buf, report)
		})
		return
	case "xlsx":
		p.download(callback, w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "usage.xlsx", func(buf *bytes.Buffer) error {
			return WriteXLSX(buf, report)
		})
		return
	}

	table, err := newUsageTable().Render(report.Usages)
	if err != nil {
		callback.Respond(http.StatusInternalServerError, err, "failed to render usage")
		return
	}
	content, err := web.Fragment(templates, "usage.html", struct {
		Report                    Report
		Table                     template.HTML
		RAMUsed, RAMMax, RAMActive string
		CSVURL, XLSXURL           string
	}{
		Report:    report,
		Table:     table,
		RAMUsed:   tables.MBFormat(report.Limits.TotalRAMUsed),
		RAMMax:    tables.MBFormat(report.Limits.MaxTotalRAMSize),
		RAMActive: tables.MBFormat(report.Summary.MemoryMB),
		CSVURL:    formatURL(period, "csv"),
		XLSXURL:   formatURL(period, "xlsx"),
	})
	if err != nil {
		callback.Respond(http.StatusInternalServerError, err, "failed to render usage")
		return
	}
	callback.Page(web.Page{Title: "Overview", Panel: "overview", Notices: q.Notices(), Content: content})
}

// Send the exported report as attachment.
func (p *Panel) download(callback web.MonitoredCallback, w http.ResponseWriter, contentType, filename string, write func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		callback.Respond(http.StatusInternalServerError, err, "failed to export usage")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	callback.Done(http.StatusOK)
}
