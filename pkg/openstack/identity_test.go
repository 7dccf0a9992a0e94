// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package openstack

import (
	"net/http"
	"testing"
)

func TestIdentityAPI_ListProjects(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		writeJSON(t, w, map[string]any{"projects": []Project{
			{ID: "1", Name: "project1", DomainID: "domain1", Enabled: true},
			{ID: "2", Name: "project2", DomainID: "domain2"},
		}})
	}
	server, k := setupMockServer(handler)
	defer server.Close()

	api := NewIdentityAPI(Monitor{}, k)
	if err := api.Init(t.Context()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	projects, more, err := api.ListProjects(t.Context())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if more {
		t.Error("expected the listing to be complete")
	}
	if len(projects) != 2 || projects[1].Name != "project2" {
		t.Errorf("unexpected projects %+v", projects)
	}
}

func TestIdentityAPI_ListProjects_Error(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}
	server, k := setupMockServer(handler)
	defer server.Close()

	api := NewIdentityAPI(Monitor{}, k)
	if err := api.Init(t.Context()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, _, err := api.ListProjects(t.Context()); err == nil {
		t.Fatal("expected an error")
	}
}
