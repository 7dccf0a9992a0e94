// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package overview

import (
	"context"
	"net/url"
	"time"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/internal/reqcache"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"
)

const (
	// Layout of the start and end query parameters.
	DateLayout = "2006-01-02"
	// Compute extension that reports the usage of all tenants.
	simpleTenantUsage = "SimpleTenantUsage"
	// Neutron extension that provides security groups.
	securityGroupExtension = "security-group"
)

// Usage of one project in the reported period.
type Usage struct {
	openstack.TenantUsage
	ProjectName string
	// Resources of the servers that are still running.
	VCPUs    int
	MemoryMB int
	LocalGB  int
	// Running servers.
	ActiveInstances int
	VCPUHours       float64
	DiskGBHours     float64
}

func newUsage(u openstack.TenantUsage, projectName string) Usage {
	result := Usage{
		TenantUsage: u,
		ProjectName: projectName,
		VCPUHours:   u.TotalHours,
		DiskGBHours: u.TotalLocalGBUsage,
	}
	for _, s := range u.ServerUsages {
		if s.EndedAt != nil {
			continue
		}
		result.ActiveInstances++
		result.VCPUs += s.VCPUs
		result.MemoryMB += s.MemoryMB
		result.LocalGB += s.LocalGB
	}
	return result
}

// Totals over all projects.
type Summary struct {
	Instances   int
	VCPUs       int
	MemoryMB    int
	LocalGB     int
	VCPUHours   float64
	DiskGBHours float64
}

func summarize(usages []Usage) Summary {
	var s Summary
	for _, u := range usages {
		s.Instances += u.ActiveInstances
		s.VCPUs += u.VCPUs
		s.MemoryMB += u.MemoryMB
		s.LocalGB += u.LocalGB
		s.VCPUHours += u.VCPUHours
		s.DiskGBHours += u.DiskGBHours
	}
	return s
}

// Absolute limits of the scoped project, with the floating ip and
// security group usage counted from neutron.
type Limits struct {
	openstack.AbsoluteLimits
	// Set if the security group usage could be counted.
	SecurityGroupsCounted bool
}

// Reporting period, both ends included.
type Period struct {
	Start time.Time
	End   time.Time
}

// Default period: the given day from 00:00:00 to 23:59:59 UTC.
func today(now time.Time) Period {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.Add(24*time.Hour - time.Second)}
}

// Read the period from the start and end query parameters. Missing values
// default to today. Invalid values are reported and replaced by today.
func parsePeriod(values url.Values, now time.Time, q *notices.Queue) Period {
	period := today(now)
	rawStart, rawEnd := values.Get("start"), values.Get("end")
	if rawStart == "" && rawEnd == "" {
		return period
	}
	start, end := period.Start, period.End
	var err error
	if rawStart != "" {
		if start, err = time.Parse(DateLayout, rawStart); err != nil {
			q.Error("Invalid date format: Using today as default.")
			return period
		}
	}
	if rawEnd != "" {
		if end, err = time.Parse(DateLayout, rawEnd); err != nil {
			q.Error("Invalid date format: Using today as default.")
			return period
		}
		end = end.Add(24*time.Hour - time.Second)
	}
	if start.After(end) {
		q.Error("Invalid time period. The end date should be more recent than the start date.")
		return period
	}
	return Period{Start: start, End: end}
}

// Usage of all projects in a period.
type GlobalUsage struct {
	compute    openstack.ComputeAPI
	identity   openstack.IdentityAPI
	networking openstack.NetworkingAPI
	notices    *notices.Queue
	Period     Period
	enabled    *reqcache.Lazy[bool]
}

func NewGlobalUsage(
	compute openstack.ComputeAPI,
	identity openstack.IdentityAPI,
	networking openstack.NetworkingAPI,
	q *notices.Queue,
	period Period,
) *GlobalUsage {
	return &GlobalUsage{
		compute:    compute,
		identity:   identity,
		networking: networking,
		notices:    q,
		Period:     period,
		enabled: reqcache.NewLazy(func(ctx context.Context) (bool, error) {
			supported, err := compute.ExtensionSupported(ctx, simpleTenantUsage)
			if err != nil {
				q.Logger().Warn("failed to check usage extension", "error", err)
				return false, nil
			}
			return supported, nil
		}),
	}
}

// Whether the compute service reports tenant usage.
func (g *GlobalUsage) SimpleTenantUsageEnabled(ctx context.Context) bool {
	enabled, _ := g.enabled.Get(ctx) //nolint:errcheck // never fails
	return enabled
}

// Usage of each project. Empty if the usage extension is not available.
func (g *GlobalUsage) Usages(ctx context.Context) []Usage {
	projects := notices.Attempt(g.notices, "Unable to retrieve project list.", nil,
		func() ([]openstack.Project, error) {
			projects, _, err := g.identity.ListProjects(ctx)
			return projects, err
		},
	)
	if !g.SimpleTenantUsageEnabled(ctx) {
		return nil
	}
	raw := notices.Attempt(g.notices, "Unable to retrieve usage information.", nil,
		func() ([]openstack.TenantUsage, error) {
			return g.compute.ListUsage(ctx, g.Period.Start, g.Period.End)
		},
	)
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	usages := make([]Usage, 0, len(raw))
	for _, u := range raw {
		name, ok := names[u.TenantID]
		if !ok {
			name = u.TenantID + " (Deleted)"
		}
		usages = append(usages, newUsage(u, name))
	}
	return usages
}

// Limits of the scoped project. Floating ips and security groups in use
// are counted from neutron.
func (g *GlobalUsage) Limits(ctx context.Context) Limits {
	var limits Limits
	limits.AbsoluteLimits = notices.Attempt(g.notices, "Unable to retrieve limit information.", openstack.AbsoluteLimits{},
		func() (openstack.AbsoluteLimits, error) { return g.compute.GetAbsoluteLimits(ctx) },
	)
	floatingIPs := notices.Attempt(g.notices, "Unable to retrieve floating IP addresses.", nil,
		func() ([]openstack.FloatingIP, error) { return g.networking.ListFloatingIPs(ctx) },
	)
	limits.TotalFloatingIPsUsed = len(floatingIPs)

	supported, err := g.networking.IsExtensionSupported(ctx, securityGroupExtension)
	if err != nil {
		g.notices.Logger().Warn("failed to check security group extension", "error", err)
		return limits
	}
	if !supported {
		return limits
	}
	groups, err := g.networking.ListSecurityGroups(ctx)
	if err != nil {
		g.notices.Fail("Unable to retrieve security groups.", err)
		return limits
	}
	limits.TotalSecurityGroupsUsed = len(groups)
	limits.SecurityGroupsCounted = true
	return limits
}

// Everything shown in the usage report.
type Report struct {
	Period                   Period
	SimpleTenantUsageEnabled bool
	Usages                   []Usage
	Summary                  Summary
	Limits                   Limits
	// Problems met while assembling the report, for exports that cannot
	// show page notices.
	Notices []notices.Notice
}

func (g *GlobalUsage) Report(ctx context.Context) Report {
	usages := g.Usages(ctx)
	return Report{
		Period:                   g.Period,
		SimpleTenantUsageEnabled: g.SimpleTenantUsageEnabled(ctx),
		Usages:                   usages,
		Summary:                  summarize(usages),
		Limits:                   g.Limits(ctx),
	}
}
