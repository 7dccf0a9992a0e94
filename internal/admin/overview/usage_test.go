// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package overview

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"

	testlibOpenstack "github.com/cobaltcore-dev/admin-dashboard/pkg/openstack/testing"
)

var testNow = time.Date(2026, 10, 18, 14, 30, 0, 0, time.UTC)

func testUsages() []openstack.TenantUsage {
	ended := "2026-10-18T10:00:00"
	return []openstack.TenantUsage{
		{
			TenantID:          "p1",
			TotalHours:        122.87,
			TotalLocalGBUsage: 0,
			ServerUsages: []openstack.ServerUsage{
				{InstanceID: "vm1", VCPUs: 1, MemoryMB: 512, LocalGB: 0},
				{InstanceID: "vm2", VCPUs: 4, MemoryMB: 4096, LocalGB: 40, EndedAt: &ended},
			},
		},
		{
			TenantID:          "gone",
			TotalHours:        2.5,
			TotalLocalGBUsage: 12.25,
			ServerUsages: []openstack.ServerUsage{
				{InstanceID: "vm3", VCPUs: 2, MemoryMB: 2048, LocalGB: 20},
			},
		},
	}
}

func testCompute() *testlibOpenstack.FakeCompute {
	return &testlibOpenstack.FakeCompute{
		Extensions: []string{"SimpleTenantUsage"},
		Usages:     testUsages(),
		Limits:     openstack.AbsoluteLimits{MaxTotalInstances: 10, TotalInstancesUsed: 2, MaxSecurityGroups: 10},
	}
}

func testIdentity() *testlibOpenstack.FakeIdentity {
	return &testlibOpenstack.FakeIdentity{Projects: []openstack.Project{{ID: "p1", Name: "test_tenant"}}}
}

func testNetworking() *testlibOpenstack.FakeNetworking {
	return &testlibOpenstack.FakeNetworking{
		Extensions:     []string{"security-group"},
		FloatingIPs:    []openstack.FloatingIP{{ID: "f1"}, {ID: "f2"}},
		SecurityGroups: []openstack.SecurityGroup{{ID: "s1"}},
	}
}

func TestParsePeriod(t *testing.T) {
	day := today(testNow)
	tests := []struct {
		name       string
		values     url.Values
		want       Period
		wantNotice string
	}{
		{
			name:   "default",
			values: url.Values{},
			want:   day,
		},
		{
			name:   "range",
			values: url.Values{"start": {"2026-10-01"}, "end": {"2026-10-02"}},
			want: Period{
				Start: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 10, 2, 23, 59, 59, 0, time.UTC),
			},
		},
		{
			name:       "invalid date",
			values:     url.Values{"start": {"yesterday"}},
			want:       day,
			wantNotice: "Invalid date format: Using today as default.",
		},
		{
			name:       "end before start",
			values:     url.Values{"start": {"2026-10-02"}, "end": {"2026-10-01"}},
			want:       day,
			wantNotice: "Invalid time period. The end date should be more recent than the start date.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := notices.NewQueue(nil)
			got := parsePeriod(tt.values, testNow, q)
			if !got.Start.Equal(tt.want.Start) || !got.End.Equal(tt.want.End) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			n := q.Notices()
			if tt.wantNotice == "" && len(n) != 0 {
				t.Errorf("expected no notices, got %v", n)
			}
			if tt.wantNotice != "" && (len(n) != 1 || n[0].Message != tt.wantNotice) {
				t.Errorf("expected notice %q, got %v", tt.wantNotice, n)
			}
		})
	}
}

func TestToday(t *testing.T) {
	day := today(time.Date(2026, 10, 18, 23, 30, 0, 0, time.FixedZone("CEST", 2*60*60)))
	if want := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC); !day.Start.Equal(want) {
		t.Errorf("expected start %v, got %v", want, day.Start)
	}
	if want := time.Date(2026, 10, 18, 23, 59, 59, 0, time.UTC); !day.End.Equal(want) {
		t.Errorf("expected end %v, got %v", want, day.End)
	}
}

func TestGlobalUsage_Usages(t *testing.T) {
	compute := testCompute()
	q := notices.NewQueue(nil)
	period := today(testNow)
	usages := NewGlobalUsage(compute, testIdentity(), testNetworking(), q, period).Usages(t.Context())
	if len(usages) != 2 {
		t.Fatalf("expected 2 usages, got %d", len(usages))
	}
	first := usages[0]
	if first.ProjectName != "test_tenant" || first.VCPUs != 1 || first.MemoryMB != 512 || first.LocalGB != 0 {
		t.Errorf("unexpected usage %+v", first)
	}
	if first.ActiveInstances != 1 || first.VCPUHours != 122.87 || first.DiskGBHours != 0 {
		t.Errorf("unexpected usage %+v", first)
	}
	if usages[1].ProjectName != "gone (Deleted)" {
		t.Errorf("expected deleted project, got %s", usages[1].ProjectName)
	}
	if !compute.LastUsageStart.Equal(period.Start) || !compute.LastUsageEnd.Equal(period.End) {
		t.Errorf("unexpected period %v - %v", compute.LastUsageStart, compute.LastUsageEnd)
	}
	if len(q.Notices()) != 0 {
		t.Errorf("expected no notices, got %v", q.Notices())
	}
}

func TestGlobalUsage_Usages_Disabled(t *testing.T) {
	for _, compute := range []*testlibOpenstack.FakeCompute{
		{Usages: testUsages()},
		{Usages: testUsages(), ExtensionsErr: errors.New("boom")},
	} {
		q := notices.NewQueue(nil)
		g := NewGlobalUsage(compute, testIdentity(), testNetworking(), q, today(testNow))
		if usages := g.Usages(t.Context()); len(usages) != 0 {
			t.Errorf("expected no usages, got %d", len(usages))
		}
		if g.SimpleTenantUsageEnabled(t.Context()) {
			t.Error("expected usage to be disabled")
		}
		if compute.Calls("ListUsage") != 0 {
			t.Error("expected no usage listing")
		}
		if compute.Calls("ExtensionSupported") != 1 {
			t.Errorf("expected the extension check to be cached, got %d calls", compute.Calls("ExtensionSupported"))
		}
		if len(q.Notices()) != 0 {
			t.Errorf("expected no notices, got %v", q.Notices())
		}
	}
}

func TestGlobalUsage_Usages_Failures(t *testing.T) {
	compute := testCompute()
	compute.UsageErr = errors.New("boom")
	q := notices.NewQueue(nil)
	identity := &testlibOpenstack.FakeIdentity{Err: errors.New("boom")}
	if usages := NewGlobalUsage(compute, identity, testNetworking(), q, today(testNow)).Usages(t.Context()); len(usages) != 0 {
		t.Errorf("expected no usages, got %d", len(usages))
	}
	want := []string{"Unable to retrieve project list.", "Unable to retrieve usage information."}
	got := q.Notices()
	if len(got) != len(want) {
		t.Fatalf("expected %d notices, got %v", len(want), got)
	}
	for i, msg := range want {
		if got[i].Message != msg {
			t.Errorf("expected %q, got %q", msg, got[i].Message)
		}
	}
}

func TestSummarize(t *testing.T) {
	usages := []Usage{
		newUsage(testUsages()[0], "a"),
		newUsage(testUsages()[1], "b"),
	}
	got := summarize(usages)
	want := Summary{Instances: 2, VCPUs: 3, MemoryMB: 2560, LocalGB: 20, VCPUHours: 125.37, DiskGBHours: 12.25}
	if got.Instances != want.Instances || got.VCPUs != want.VCPUs || got.MemoryMB != want.MemoryMB || got.LocalGB != want.LocalGB {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if hours(got.VCPUHours) != "125.37" || hours(got.DiskGBHours) != "12.25" {
		t.Errorf("unexpected hours %+v", got)
	}
}

func TestGlobalUsage_Limits(t *testing.T) {
	q := notices.NewQueue(nil)
	limits := NewGlobalUsage(testCompute(), testIdentity(), testNetworking(), q, today(testNow)).Limits(t.Context())
	if limits.MaxTotalInstances != 10 || limits.TotalFloatingIPsUsed != 2 {
		t.Errorf("unexpected limits %+v", limits)
	}
	if !limits.SecurityGroupsCounted || limits.TotalSecurityGroupsUsed != 1 {
		t.Errorf("expected security groups to be counted, got %+v", limits)
	}
	if len(q.Notices()) != 0 {
		t.Errorf("expected no notices, got %v", q.Notices())
	}

	networking := testNetworking()
	networking.Extensions = nil
	limits = NewGlobalUsage(testCompute(), testIdentity(), networking, q, today(testNow)).Limits(t.Context())
	if limits.SecurityGroupsCounted || networking.Calls("ListSecurityGroups") != 0 {
		t.Error("expected no security group listing without the extension")
	}
}

func TestGlobalUsage_Limits_Failures(t *testing.T) {
	compute := testCompute()
	compute.LimitsErr = errors.New("boom")
	networking := testNetworking()
	networking.FloatingIPsErr = errors.New("boom")
	networking.SecGroupsErr = errors.New("boom")
	q := notices.NewQueue(nil)
	limits := NewGlobalUsage(compute, testIdentity(), networking, q, today(testNow)).Limits(t.Context())
	if limits.MaxTotalInstances != 0 || limits.SecurityGroupsCounted {
		t.Errorf("unexpected limits %+v", limits)
	}
	want := []string{
		"Unable to retrieve limit information.",
		"Unable to retrieve floating IP addresses.",
		"Unable to retrieve security groups.",
	}
	got := q.Notices()
	if len(got) != len(want) {
		t.Fatalf("expected %d notices, got %v", len(want), got)
	}
	for i, msg := range want {
		if got[i].Message != msg {
			t.Errorf("expected %q, got %q", msg, got[i].Message)
		}
	}
}
