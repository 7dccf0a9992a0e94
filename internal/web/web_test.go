// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/monitoring"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestWithRequestID(t *testing.T) {
	var seen bool
	handler := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = Logger(r.Context()) != nil
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", http.NoBody))
	id := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("expected a uuid request id, got %q", id)
	}
	if !seen {
		t.Error("expected a request logger")
	}

	// Valid ids sent by the client are kept, others are replaced.
	known := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/up", http.NoBody)
	req.Header.Set(RequestIDHeader, known)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get(RequestIDHeader) != known {
		t.Errorf("expected request id %s, got %s", known, rec.Header().Get(RequestIDHeader))
	}
	req.Header.Set(RequestIDHeader, "<script>")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get(RequestIDHeader) == "<script>" {
		t.Error("expected invalid request id to be replaced")
	}
}

func TestAPIMonitor_Respond(t *testing.T) {
	registry := &monitoring.Registry{Registry: prometheus.NewRegistry()}
	monitor := NewAPIMonitor(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/networks/", http.NoBody)
	monitor.Callback(rec, req, "/admin/networks/").Respond(http.StatusInternalServerError, errors.New("boom"), "failed to render page")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("expected internal error not to be shown")
	}

	monitor.Callback(httptest.NewRecorder(), req, "/admin/networks/").Done(http.StatusOK)
	if n := testutil.CollectAndCount(monitor.ApiRequestsTimer, "dashboard_api_request_duration_seconds"); n != 2 {
		t.Errorf("expected 2 series, got %d", n)
	}
}

func TestRender(t *testing.T) {
	rec := httptest.NewRecorder()
	err := Render(rec, http.StatusOK, Page{
		Title:   "Networks",
		Panel:   "networks",
		Notices: []notices.Notice{{Level: notices.LevelError, Message: "Network list can not be retrieved."}},
		Content: template.HTML("<p>content</p>"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`<div class="alert alert-error">Network list can not be retrieved.</div>`,
		`<a href="/admin/networks/" class="active">Networks</a>`,
		"<p>content</p>",
		"<title>Networks - Admin Dashboard</title>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %s in body", want)
		}
	}
}

func TestRedirect(t *testing.T) {
	q := notices.NewQueue(nil)
	q.Success("Network net1 was successfully updated.")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/networks/n1/update", http.NoBody)
	Redirect(rec, req, "/admin/networks/", q)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin/networks/" {
		t.Errorf("unexpected redirect %d to %s", rec.Code, rec.Header().Get("Location"))
	}
	next := httptest.NewRequest(http.MethodGet, "/admin/networks/", http.NoBody)
	for _, cookie := range rec.Result().Cookies() {
		next.AddCookie(cookie)
	}
	got := notices.PopFlash(httptest.NewRecorder(), next)
	if len(got) != 1 || got[0].Message != "Network net1 was successfully updated." {
		t.Errorf("unexpected flash %v", got)
	}
}
