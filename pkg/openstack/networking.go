// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package openstack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cobaltcore-dev/admin-dashboard/pkg/keystone"
	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/external"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/subnets"
)

type NetworkingAPI interface {
	Init(ctx context.Context) error
	ListNetworks(ctx context.Context) ([]Network, error)
	GetNetwork(ctx context.Context, id string) (Network, error)
	CreateNetwork(ctx context.Context, opts NetworkCreateOpts) (Network, error)
	UpdateNetwork(ctx context.Context, id string, opts NetworkUpdateOpts) (Network, error)
	DeleteNetwork(ctx context.Context, id string) error
	ListSubnets(ctx context.Context, networkID string) ([]Subnet, error)
	ListPorts(ctx context.Context, networkID string) ([]Port, error)
	// Check if neutron advertises the extension with the given alias.
	IsExtensionSupported(ctx context.Context, alias string) (bool, error)
	// List the dhcp agents that host the given network.
	ListDHCPAgentsHostingNetwork(ctx context.Context, networkID string) ([]Agent, error)
	// List the floating ips of the scoped project.
	ListFloatingIPs(ctx context.Context) ([]FloatingIP, error)
	// List the security groups of the scoped project.
	ListSecurityGroups(ctx context.Context) ([]SecurityGroup, error)
}

type networkingAPI struct {
	mon         Monitor
	keystoneAPI keystone.KeystoneClient
	sc          *gophercloud.ServiceClient
	// Project the keystone token is scoped to, empty if unknown.
	projectID string
}

func NewNetworkingAPI(mon Monitor, k keystone.KeystoneClient) NetworkingAPI {
	return &networkingAPI{mon: mon, keystoneAPI: k}
}

func (api *networkingAPI) Init(ctx context.Context) error {
	if err := api.keystoneAPI.Authenticate(ctx); err != nil {
		return fmt.Errorf("failed to authenticate keystone: %w", err)
	}
	provider := api.keystoneAPI.Client()
	serviceType := "network"
	url, err := api.keystoneAPI.FindEndpoint(api.keystoneAPI.Availability(), serviceType)
	if err != nil {
		return fmt.Errorf("failed to find neutron endpoint: %w", err)
	}
	slog.Info("using neutron endpoint", "url", url)
	api.sc = &gophercloud.ServiceClient{
		ProviderClient: provider,
		Endpoint:       url,
		ResourceBase:   url + "v2.0/",
		Type:           serviceType,
	}
	api.projectID = scopedProjectID(provider)
	return nil
}

func (api *networkingAPI) ListNetworks(ctx context.Context) ([]Network, error) {
	defer api.mon.observe("network", "list_networks")()
	pages, err := networks.List(api.sc, networks.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, err
	}
	var data = &struct {
		Networks []Network `json:"networks"`
	}{}
	if err := pages.(networks.NetworkPage).ExtractInto(data); err != nil {
		return nil, err
	}
	slog.Info("fetched neutron data", "label", "networks", "count", len(data.Networks))
	return data.Networks, nil
}

func (api *networkingAPI) GetNetwork(ctx context.Context, id string) (Network, error) {
	defer api.mon.observe("network", "get_network")()
	var data struct {
		Network Network `json:"network"`
	}
	if err := networks.Get(ctx, api.sc, id).ExtractInto(&data); err != nil {
		return Network{}, err
	}
	return data.Network, nil
}

func (api *networkingAPI) CreateNetwork(ctx context.Context, opts NetworkCreateOpts) (Network, error) {
	defer api.mon.observe("network", "create_network")()
	createOpts := external.CreateOptsExt{
		CreateOptsBuilder: networks.CreateOpts{
			Name:         opts.Name,
			TenantID:     opts.TenantID,
			AdminStateUp: &opts.AdminStateUp,
			Shared:       &opts.Shared,
		},
		External: &opts.External,
	}
	var data struct {
		Network Network `json:"network"`
	}
	if err := networks.Create(ctx, api.sc, createOpts).ExtractInto(&data); err != nil {
		return Network{}, err
	}
	slog.Info("created network", "id", data.Network.ID, "name", data.Network.Name)
	return data.Network, nil
}

func (api *networkingAPI) UpdateNetwork(ctx context.Context, id string, opts NetworkUpdateOpts) (Network, error) {
	defer api.mon.observe("network", "update_network")()
	updateOpts := external.UpdateOptsExt{
		UpdateOptsBuilder: networks.UpdateOpts{
			Name:         &opts.Name,
			AdminStateUp: &opts.AdminStateUp,
			Shared:       &opts.Shared,
		},
		External: &opts.External,
	}
	var data struct {
		Network Network `json:"network"`
	}
	if err := networks.Update(ctx, api.sc, id, updateOpts).ExtractInto(&data); err != nil {
		return Network{}, err
	}
	slog.Info("updated network", "id", id)
	return data.Network, nil
}

func (api *networkingAPI) DeleteNetwork(ctx context.Context, id string) error {
	defer api.mon.observe("network", "delete_network")()
	if err := networks.Delete(ctx, api.sc, id).ExtractErr(); err != nil {
		return err
	}
	slog.Info("deleted network", "id", id)
	return nil
}

func (api *networkingAPI) ListSubnets(ctx context.Context, networkID string) ([]Subnet, error) {
	defer api.mon.observe("network", "list_subnets")()
	pages, err := subnets.List(api.sc, subnets.ListOpts{NetworkID: networkID}).AllPages(ctx)
	if err != nil {
		return nil, err
	}
	var data = &struct {
		Subnets []Subnet `json:"subnets"`
	}{}
	if err := pages.(subnets.SubnetPage).ExtractInto(data); err != nil {
		return nil, err
	}
	return data.Subnets, nil
}

func (api *networkingAPI) ListPorts(ctx context.Context, networkID string) ([]Port, error) {
	defer api.mon.observe("network", "list_ports")()
	pages, err := ports.List(api.sc, ports.ListOpts{NetworkID: networkID}).AllPages(ctx)
	if err != nil {
		return nil, err
	}
	var data = &struct {
		Ports []Port `json:"ports"`
	}{}
	if err := pages.(ports.PortPage).ExtractInto(data); err != nil {
		return nil, err
	}
	return data.Ports, nil
}

func (api *networkingAPI) IsExtensionSupported(ctx context.Context, alias string) (bool, error) {
	defer api.mon.observe("network", "list_extensions")()
	return extensionSupported(ctx, api.sc, alias)
}

func (api *networkingAPI) ListDHCPAgentsHostingNetwork(ctx context.Context, networkID string) ([]Agent, error) {
	defer api.mon.observe("network", "list_dhcp_agents")()
	// Note: gophercloud only covers the reverse lookup (networks of an agent).
	var data struct {
		Agents []Agent `json:"agents"`
	}
	url := api.sc.ServiceURL("networks", networkID, "dhcp-agents")
	if _, err := api.sc.Get(ctx, url, &data, nil); err != nil {
		return nil, err
	}
	return data.Agents, nil
}

func (api *networkingAPI) ListFloatingIPs(ctx context.Context) ([]FloatingIP, error) {
	defer api.mon.observe("network", "list_floating_ips")()
	pages, err := floatingips.List(api.sc, floatingips.ListOpts{ProjectID: api.projectID}).AllPages(ctx)
	if err != nil {
		return nil, err
	}
	var data = &struct {
		FloatingIPs []FloatingIP `json:"floatingips"`
	}{}
	if err := pages.(floatingips.FloatingIPPage).ExtractInto(data); err != nil {
		return nil, err
	}
	return data.FloatingIPs, nil
}

func (api *networkingAPI) ListSecurityGroups(ctx context.Context) ([]SecurityGroup, error) {
	defer api.mon.observe("network", "list_security_groups")()
	pages, err := groups.List(api.sc, groups.ListOpts{ProjectID: api.projectID}).AllPages(ctx)
	if err != nil {
		return nil, err
	}
	var data = &struct {
		SecurityGroups []SecurityGroup `json:"security_groups"`
	}{}
	if err := pages.(groups.SecGroupPage).ExtractInto(data); err != nil {
		return nil, err
	}
	return data.SecurityGroups, nil
}
