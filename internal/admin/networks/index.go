// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package networks

import (
	"context"
	"strconv"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/internal/reqcache"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"
	"github.com/majewsky/gg/option"
)

const (
	IndexURL = "/admin/networks/"
	// Shown as agent count if it cannot be determined.
	unknownAgents = "Unknown"
	// Neutron extension to schedule networks on dhcp agents.
	dhcpAgentScheduler = "dhcp_agent_scheduler"
)

// Network enriched with the details shown in the network table.
type Network struct {
	openstack.Network
	TenantName option.Option[string]
	// Number of hosting dhcp agents, or "Unknown".
	NumAgents string
}

// Name of the network, or its id if it has no name.
func (n Network) DisplayName() string {
	if n.Name == "" {
		return n.ID
	}
	return n.Name
}

// Assembles the networks of all projects.
type IndexView struct {
	networking openstack.NetworkingAPI
	notices    *notices.Queue
	tenants    *reqcache.Lazy[map[string]openstack.Project]
	dhcp       *reqcache.Lazy[bool]
}

func NewIndexView(networking openstack.NetworkingAPI, identity openstack.IdentityAPI, q *notices.Queue) *IndexView {
	return &IndexView{
		networking: networking,
		notices:    q,
		tenants:    newTenantCache(identity, q, "Unable to retrieve information about the networks' projects."),
		dhcp:       newExtensionCache(networking, dhcpAgentScheduler),
	}
}

// Map of all projects by id. A failed listing is reported with msg and
// results in an empty map.
func newTenantCache(identity openstack.IdentityAPI, q *notices.Queue, msg string) *reqcache.Lazy[map[string]openstack.Project] {
	return reqcache.NewLazy(func(ctx context.Context) (map[string]openstack.Project, error) {
		projects := notices.Attempt(q, msg, nil, func() ([]openstack.Project, error) {
			projects, _, err := identity.ListProjects(ctx)
			return projects, err
		})
		tenants := make(map[string]openstack.Project, len(projects))
		for _, p := range projects {
			tenants[p.ID] = p
		}
		return tenants, nil
	})
}

func newExtensionCache(networking openstack.NetworkingAPI, alias string) *reqcache.Lazy[bool] {
	return reqcache.NewLazy(func(ctx context.Context) (bool, error) {
		return networking.IsExtensionSupported(ctx, alias)
	})
}

func (v *IndexView) GetData(ctx context.Context) []Network {
	nets := notices.Attempt(v.notices, "Network list can not be retrieved.", nil,
		func() ([]openstack.Network, error) { return v.networking.ListNetworks(ctx) },
	)
	if len(nets) == 0 {
		return nil
	}
	tenants, _ := v.tenants.Get(ctx) //nolint:errcheck // never fails
	result := make([]Network, 0, len(nets))
	// Agent lookups are made per network. Failures are counted and
	// reported once after the loop.
	agentFailures := 0
	for _, n := range nets {
		network := Network{Network: n}
		if tenant, ok := tenants[n.TenantID]; ok {
			network.TenantName = option.Some(tenant.Name)
		}
		numAgents, err := v.agentsData(ctx, n.ID)
		if err != nil {
			v.notices.Logger().Warn("failed to list dhcp agents", "network", n.ID, "error", err)
			agentFailures++
		}
		network.NumAgents = numAgents
		result = append(result, network)
	}
	if agentFailures > 0 {
		v.notices.Error("Unable to list dhcp agents hosting network.")
	}
	return result
}

// Number of dhcp agents hosting the network, or "Unknown" if the
// agent scheduler is not available.
func (v *IndexView) agentsData(ctx context.Context, networkID string) (string, error) {
	supported, err := v.dhcp.Get(ctx)
	if err != nil {
		return unknownAgents, err
	}
	if !supported {
		return unknownAgents, nil
	}
	agents, err := v.networking.ListDHCPAgentsHostingNetwork(ctx, networkID)
	if err != nil {
		return unknownAgents, err
	}
	return strconv.Itoa(len(agents)), nil
}
