// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package instances

import (
	"context"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"
	"github.com/majewsky/gg/option"
)

// Server enriched with the details shown in the instance table.
type Instance struct {
	openstack.Server
	// Unset if the flavor could not be resolved.
	FullFlavor option.Option[openstack.Flavor]
	// Unset if the project is unknown.
	TenantName option.Option[string]
}

// Assembles one page of instances of all projects.
type IndexView struct {
	compute  openstack.ComputeAPI
	identity openstack.IdentityAPI
	notices  *notices.Queue
	pageSize int
}

func NewIndexView(compute openstack.ComputeAPI, identity openstack.IdentityAPI, q *notices.Queue, pageSize int) *IndexView {
	return &IndexView{compute: compute, identity: identity, notices: q, pageSize: pageSize}
}

// Get the page of instances after the marker, and whether more
// instances are available.
func (v *IndexView) GetData(ctx context.Context, marker string) ([]Instance, bool) {
	servers, more, err := v.compute.ListServers(ctx, openstack.ServerListOpts{
		Marker:     marker,
		Limit:      v.pageSize,
		AllTenants: true,
	})
	if err != nil {
		v.notices.Fail("Unable to retrieve instance list.", err)
		return nil, false
	}
	if len(servers) == 0 {
		return nil, more
	}

	// Gather flavors and projects once to correlate against ids.
	flavors := notices.Attempt(v.notices, "Unable to retrieve flavor information.", nil,
		func() ([]openstack.Flavor, error) { return v.compute.ListFlavors(ctx) },
	)
	projects := notices.Attempt(v.notices, "Unable to retrieve instance project information.", nil,
		func() ([]openstack.Project, error) {
			projects, _, err := v.identity.ListProjects(ctx)
			return projects, err
		},
	)
	fullFlavors := make(map[string]openstack.Flavor, len(flavors))
	for _, f := range flavors {
		fullFlavors[f.ID] = f
	}
	tenants := make(map[string]openstack.Project, len(projects))
	for _, p := range projects {
		tenants[p.ID] = p
	}

	instances := make([]Instance, 0, len(servers))
	sizeFailures := 0
	for _, server := range servers {
		inst := Instance{Server: server}
		if flavor, ok := fullFlavors[server.Flavor.ID]; ok {
			inst.FullFlavor = option.Some(flavor)
		} else {
			// Flavors that are deleted or not visible are missing in the list.
			flavor, err := v.compute.GetFlavor(ctx, server.Flavor.ID)
			if err != nil {
				v.notices.Logger().Warn("failed to get flavor", "server", server.ID, "flavor", server.Flavor.ID, "error", err)
				sizeFailures++
			} else {
				inst.FullFlavor = option.Some(flavor)
			}
		}
		if tenant, ok := tenants[server.TenantID]; ok {
			inst.TenantName = option.Some(tenant.Name)
		}
		instances = append(instances, inst)
	}
	if sizeFailures > 0 {
		v.notices.Error("Unable to retrieve instance size information.")
	}
	return instances, more
}
