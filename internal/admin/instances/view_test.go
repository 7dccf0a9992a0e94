// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package instances

import (
	"errors"
	"testing"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"

	testlibOpenstack "github.com/cobaltcore-dev/admin-dashboard/pkg/openstack/testing"
)

func server(id, tenantID, flavorID string) openstack.Server {
	return openstack.Server{ID: id, Name: "server-" + id, TenantID: tenantID, Flavor: openstack.ServerFlavorRef{ID: flavorID}}
}

func TestIndexView_GetData(t *testing.T) {
	compute := &testlibOpenstack.FakeCompute{
		Servers: []openstack.Server{server("1", "p1", "f1"), server("2", "p2", "f1")},
		HasMore: true,
		Flavors: []openstack.Flavor{{ID: "f1", Name: "m1.tiny", VCPUs: 1, RAM: 512, Disk: 1}},
	}
	identity := &testlibOpenstack.FakeIdentity{Projects: []openstack.Project{{ID: "p1", Name: "project1"}}}
	q := notices.NewQueue(nil)

	instances, more := NewIndexView(compute, identity, q, 20).GetData(t.Context(), "0")
	if !more {
		t.Error("expected more instances")
	}
	if len(instances) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(instances))
	}
	if name, ok := instances[0].TenantName.Unpack(); !ok || name != "project1" {
		t.Errorf("expected tenant name project1, got %v", instances[0].TenantName)
	}
	if instances[1].TenantName.IsSome() {
		t.Error("expected unknown tenant to have no name")
	}
	if !instances[0].FullFlavor.IsSome() || !instances[1].FullFlavor.IsSome() {
		t.Error("expected flavors to be resolved")
	}
	opts := compute.LastServerOpts
	if opts.Marker != "0" || opts.Limit != 20 || !opts.AllTenants {
		t.Errorf("unexpected list options %+v", opts)
	}
	if compute.Calls("ListFlavors") != 1 || identity.Calls("ListProjects") != 1 {
		t.Error("expected flavors and projects to be fetched once")
	}
	if compute.Calls("GetFlavor") != 0 {
		t.Error("expected no fallback flavor fetch")
	}
	if len(q.Notices()) != 0 {
		t.Errorf("expected no notices, got %v", q.Notices())
	}
}

func TestIndexView_GetData_ListFailure(t *testing.T) {
	compute := &testlibOpenstack.FakeCompute{ServersErr: errors.New("boom"), HasMore: true}
	identity := &testlibOpenstack.FakeIdentity{}
	q := notices.NewQueue(nil)

	instances, more := NewIndexView(compute, identity, q, 20).GetData(t.Context(), "")
	if len(instances) != 0 || more {
		t.Errorf("expected no instances and no more, got %d (more=%v)", len(instances), more)
	}
	got := q.Notices()
	if len(got) != 1 || got[0].Message != "Unable to retrieve instance list." {
		t.Errorf("unexpected notices %v", got)
	}
	if compute.Calls("ListFlavors") != 0 || identity.Calls("ListProjects") != 0 {
		t.Error("expected no enrichment without instances")
	}
}

func TestIndexView_GetData_FlavorFallback(t *testing.T) {
	compute := &testlibOpenstack.FakeCompute{
		Servers: []openstack.Server{
			server("1", "p1", "f1"),
			server("2", "p1", "deleted"),
			server("3", "p1", "deleted"),
			server("4", "p1", "private"),
		},
		Flavors:       []openstack.Flavor{{ID: "f1", Name: "m1.tiny"}},
		HiddenFlavors: map[string]openstack.Flavor{"deleted": {ID: "deleted", Name: "old"}},
	}
	identity := &testlibOpenstack.FakeIdentity{}
	q := notices.NewQueue(nil)

	instances, _ := NewIndexView(compute, identity, q, 20).GetData(t.Context(), "")
	// One fallback per instance with a flavor missing in the list.
	if n := compute.Calls("GetFlavor"); n != 3 {
		t.Errorf("expected 3 fallback fetches, got %d", n)
	}
	if flavor, ok := instances[1].FullFlavor.Unpack(); !ok || flavor.Name != "old" {
		t.Errorf("expected fallback flavor, got %v", instances[1].FullFlavor)
	}
	if instances[3].FullFlavor.IsSome() {
		t.Error("expected unresolved flavor to stay unset")
	}
	got := q.Notices()
	if len(got) != 1 || got[0].Message != "Unable to retrieve instance size information." {
		t.Errorf("unexpected notices %v", got)
	}
}

func TestIndexView_GetData_EnrichmentFailures(t *testing.T) {
	compute := &testlibOpenstack.FakeCompute{
		Servers:      []openstack.Server{server("1", "p1", "f1"), server("2", "p1", "f2")},
		FlavorsErr:   errors.New("boom"),
		GetFlavorErr: errors.New("boom"),
	}
	identity := &testlibOpenstack.FakeIdentity{Err: errors.New("boom")}
	q := notices.NewQueue(nil)

	instances, _ := NewIndexView(compute, identity, q, 20).GetData(t.Context(), "")
	if len(instances) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(instances))
	}
	if compute.Calls("GetFlavor") != 2 {
		t.Errorf("expected 2 fallback fetches, got %d", compute.Calls("GetFlavor"))
	}
	want := []string{
		"Unable to retrieve flavor information.",
		"Unable to retrieve instance project information.",
		"Unable to retrieve instance size information.",
	}
	got := q.Notices()
	if len(got) != len(want) {
		t.Fatalf("expected %d notices, got %v", len(want), got)
	}
	for i, msg := range want {
		if got[i].Message != msg {
			t.Errorf("expected notice %q, got %q", msg, got[i].Message)
		}
	}
}
