// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/monitoring"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics about the requests served by the dashboard.
type APIMonitor struct {
	// A histogram to measure how long the API requests take to run.
	ApiRequestsTimer *prometheus.HistogramVec
}

func NewAPIMonitor(registry *monitoring.Registry) APIMonitor {
	apiRequestsTimer := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_api_request_duration_seconds",
		Help:    "Duration of API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status", "error"})
	registry.MustRegister(apiRequestsTimer)
	return APIMonitor{ApiRequestsTimer: apiRequestsTimer}
}

// Tracks the handling of one request.
type MonitoredCallback struct {
	apiMonitor *APIMonitor
	w          http.ResponseWriter
	r          *http.Request
	pattern    string
	t          time.Time
}

func (m *APIMonitor) Callback(w http.ResponseWriter, r *http.Request, pattern string) MonitoredCallback {
	return MonitoredCallback{apiMonitor: m, w: w, r: r, pattern: pattern, t: time.Now()}
}

// Record the request with the given status. If err is set, text is sent
// to the client instead of the internal error.
func (c MonitoredCallback) Respond(code int, err error, text string) {
	c.observe(code, text)
	if err != nil {
		Logger(c.r.Context()).Error("failed to handle request", "path", c.pattern, "error", err)
		http.Error(c.w, text, code)
		return
	}
}

// Record the request without writing a response, for handlers that
// already wrote one (pages, redirects, downloads).
func (c MonitoredCallback) Done(code int) {
	c.observe(code, "")
}

// Context of the request.
func (c MonitoredCallback) Context() context.Context {
	return c.r.Context()
}

// Render the page and record the request.
func (c MonitoredCallback) Page(page Page) {
	if err := Render(c.w, http.StatusOK, page); err != nil {
		c.Respond(http.StatusInternalServerError, err, "failed to render page")
		return
	}
	c.Done(http.StatusOK)
}

// Redirect with the queued notices and record the request.
func (c MonitoredCallback) Redirect(url string, q *notices.Queue) {
	Redirect(c.w, c.r, url, q)
	c.Done(http.StatusFound)
}

func (c MonitoredCallback) observe(code int, text string) {
	if c.apiMonitor == nil || c.apiMonitor.ApiRequestsTimer == nil {
		return
	}
	observer := c.apiMonitor.ApiRequestsTimer.WithLabelValues(
		c.r.Method,
		c.pattern,
		strconv.Itoa(code),
		text, // Internal error messages should not face the monitor.
	)
	observer.Observe(time.Since(c.t).Seconds())
}
