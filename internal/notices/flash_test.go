// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package notices

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFlash_RoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	want := []Notice{{Level: LevelSuccess, Message: "Network net1 was successfully updated."}}
	if err := SetFlash(rec, want...); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/networks/", http.NoBody)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	got := PopFlash(rec, req)
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("expected %v, got %v", want, got)
	}
	expired := rec.Result().Cookies()
	if len(expired) != 1 || expired[0].MaxAge >= 0 {
		t.Errorf("expected the cookie to be expired, got %v", expired)
	}
}

func TestFlash_Empty(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := SetFlash(rec); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no cookie without notices")
	}
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if got := PopFlash(httptest.NewRecorder(), req); got != nil {
		t.Errorf("expected no notices, got %v", got)
	}
}

func TestFlash_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "not base64!"})
	if got := PopFlash(httptest.NewRecorder(), req); got != nil {
		t.Errorf("expected malformed cookie to be dropped, got %v", got)
	}
}
