// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package networks

import (
	"context"
	"fmt"
	"html/template"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/internal/reqcache"
	"github.com/cobaltcore-dev/admin-dashboard/internal/tables"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"
)

// Assembles the detail page of one network.
type DetailView struct {
	networking openstack.NetworkingAPI
	notices    *notices.Queue
	networkID  string
	network    *reqcache.Lazy[openstack.Network]
	dhcp       *reqcache.Lazy[bool]
}

func NewDetailView(networking openstack.NetworkingAPI, q *notices.Queue, networkID string) *DetailView {
	return &DetailView{
		networking: networking,
		notices:    q,
		networkID:  networkID,
		network:    newNetworkCache(networking, networkID),
		dhcp:       newExtensionCache(networking, dhcpAgentScheduler),
	}
}

// Network record of the page, fetched once and kept as it is. Without it
// no page can be shown, so a failure redirects to the network index.
func newNetworkCache(networking openstack.NetworkingAPI, networkID string) *reqcache.Lazy[openstack.Network] {
	return reqcache.NewLazy(func(ctx context.Context) (openstack.Network, error) {
		network, err := networking.GetNetwork(ctx, networkID)
		if err != nil {
			return openstack.Network{}, &notices.RedirectError{
				Msg: fmt.Sprintf("Unable to retrieve details for network %q.", networkID),
				URL: IndexURL,
				Err: err,
			}
		}
		return network, nil
	})
}

func (v *DetailView) Network(ctx context.Context) (openstack.Network, error) {
	return v.network.Get(ctx)
}

func (v *DetailView) Subnets(ctx context.Context) []openstack.Subnet {
	return notices.Attempt(v.notices, "Subnet list can not be retrieved.", nil,
		func() ([]openstack.Subnet, error) { return v.networking.ListSubnets(ctx, v.networkID) },
	)
}

func (v *DetailView) Ports(ctx context.Context) []openstack.Port {
	return notices.Attempt(v.notices, "Port list can not be retrieved.", nil,
		func() ([]openstack.Port, error) { return v.networking.ListPorts(ctx, v.networkID) },
	)
}

// Dhcp agents hosting the network. Empty if the agent scheduler is not
// available.
func (v *DetailView) Agents(ctx context.Context) []openstack.Agent {
	const msg = "Unable to list dhcp agents hosting network."
	supported, err := v.dhcp.Get(ctx)
	if err != nil {
		v.notices.Fail(msg, err)
		return nil
	}
	if !supported {
		return nil
	}
	return notices.Attempt(v.notices, msg, nil,
		func() ([]openstack.Agent, error) { return v.networking.ListDHCPAgentsHostingNetwork(ctx, v.networkID) },
	)
}

// Network with the labels shown on the detail page.
type DetailNetwork struct {
	openstack.Network
	StatusLabel     string
	AdminStateLabel string
}

// Template variables of the detail page.
type DetailContext struct {
	Network DetailNetwork
	// Where to go back to.
	URL     string
	Actions template.HTML
	// The agents table is only shown if the agent scheduler is available.
	DHCPAgentSupport bool
}

func (v *DetailView) Context(ctx context.Context) (DetailContext, error) {
	network, err := v.Network(ctx)
	if err != nil {
		return DetailContext{}, err
	}
	supported, err := v.dhcp.Get(ctx)
	if err != nil {
		v.notices.Logger().Warn("failed to check dhcp agent scheduler", "error", err)
		supported = false
	}
	actions, err := tables.RenderRowActions(rowActions, Network{Network: network})
	if err != nil {
		return DetailContext{}, err
	}
	// Unnamed networks are shown by their id.
	network.Name = Network{Network: network}.DisplayName()
	return DetailContext{
		Network: DetailNetwork{
			Network:         network,
			StatusLabel:     tables.StatusDisplayChoices.Label(network.Status),
			AdminStateLabel: tables.AdminStateDisplayChoices.Label(adminState(network.AdminStateUp)),
		},
		URL:              IndexURL,
		Actions:          actions,
		DHCPAgentSupport: supported,
	}, nil
}

func adminState(up bool) string {
	if up {
		return "UP"
	}
	return "DOWN"
}
