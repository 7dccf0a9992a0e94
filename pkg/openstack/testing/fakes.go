// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package openstack

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	osapi "github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"
)

// Returned by the fakes when a record cannot be found.
var ErrNotFound = errors.New("not found")

var (
	_ osapi.ComputeAPI    = &FakeCompute{}
	_ osapi.IdentityAPI   = &FakeIdentity{}
	_ osapi.NetworkingAPI = &FakeNetworking{}
)

// Records how often each operation of a fake was called.
type calls struct {
	mu     sync.Mutex
	counts map[string]int
}

func (c *calls) record(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[op]++
}

// Number of calls to the given operation, e.g. "GetFlavor".
func (c *calls) Calls(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[op]
}

// In-memory compute api.
type FakeCompute struct {
	calls
	Servers    []osapi.Server
	HasMore    bool
	ServersErr error
	// Listed by ListFlavors.
	Flavors    []osapi.Flavor
	FlavorsErr error
	// Only reachable through GetFlavor, e.g. deleted flavors.
	HiddenFlavors map[string]osapi.Flavor
	GetFlavorErr  error
	Extensions    []string
	ExtensionsErr error
	Usages        []osapi.TenantUsage
	UsageErr      error
	Limits        osapi.AbsoluteLimits
	LimitsErr     error
	// Arguments of the last calls.
	LastServerOpts osapi.ServerListOpts
	LastUsageStart time.Time
	LastUsageEnd   time.Time
}

func (f *FakeCompute) Init(ctx context.Context) error { return nil }

func (f *FakeCompute) ListServers(ctx context.Context, opts osapi.ServerListOpts) ([]osapi.Server, bool, error) {
	f.record("ListServers")
	f.LastServerOpts = opts
	if f.ServersErr != nil {
		return nil, false, f.ServersErr
	}
	return f.Servers, f.HasMore, nil
}

func (f *FakeCompute) ListFlavors(ctx context.Context) ([]osapi.Flavor, error) {
	f.record("ListFlavors")
	if f.FlavorsErr != nil {
		return nil, f.FlavorsErr
	}
	return f.Flavors, nil
}

func (f *FakeCompute) GetFlavor(ctx context.Context, id string) (osapi.Flavor, error) {
	f.record("GetFlavor")
	if f.GetFlavorErr != nil {
		return osapi.Flavor{}, f.GetFlavorErr
	}
	if flavor, ok := f.HiddenFlavors[id]; ok {
		return flavor, nil
	}
	for _, flavor := range f.Flavors {
		if flavor.ID == id {
			return flavor, nil
		}
	}
	return osapi.Flavor{}, ErrNotFound
}

func (f *FakeCompute) ExtensionSupported(ctx context.Context, name string) (bool, error) {
	f.record("ExtensionSupported")
	if f.ExtensionsErr != nil {
		return false, f.ExtensionsErr
	}
	return slices.Contains(f.Extensions, name), nil
}

func (f *FakeCompute) ListUsage(ctx context.Context, start, end time.Time) ([]osapi.TenantUsage, error) {
	f.record("ListUsage")
	f.LastUsageStart, f.LastUsageEnd = start, end
	if f.UsageErr != nil {
		return nil, f.UsageErr
	}
	return f.Usages, nil
}

func (f *FakeCompute) GetAbsoluteLimits(ctx context.Context) (osapi.AbsoluteLimits, error) {
	f.record("GetAbsoluteLimits")
	if f.LimitsErr != nil {
		return osapi.AbsoluteLimits{}, f.LimitsErr
	}
	return f.Limits, nil
}

// In-memory identity api.
type FakeIdentity struct {
	calls
	Projects []osapi.Project
	Err      error
}

func (f *FakeIdentity) Init(ctx context.Context) error { return nil }

func (f *FakeIdentity) ListProjects(ctx context.Context) ([]osapi.Project, bool, error) {
	f.record("ListProjects")
	if f.Err != nil {
		return nil, false, f.Err
	}
	return f.Projects, false, nil
}

// In-memory networking api. Writes are applied to Networks.
type FakeNetworking struct {
	calls
	Networks       []osapi.Network
	NetworksErr    error
	GetNetworkErr  error
	CreateErr      error
	UpdateErr      error
	DeleteErr      error
	Subnets        []osapi.Subnet
	SubnetsErr     error
	Ports          []osapi.Port
	PortsErr       error
	Extensions     []string
	ExtensionsErr  error
	Agents         map[string][]osapi.Agent
	AgentsErr      error
	FloatingIPs    []osapi.FloatingIP
	FloatingIPsErr error
	SecurityGroups []osapi.SecurityGroup
	SecGroupsErr   error
}

func (f *FakeNetworking) Init(ctx context.Context) error { return nil }

func (f *FakeNetworking) ListNetworks(ctx context.Context) ([]osapi.Network, error) {
	f.record("ListNetworks")
	if f.NetworksErr != nil {
		return nil, f.NetworksErr
	}
	return f.Networks, nil
}

func (f *FakeNetworking) GetNetwork(ctx context.Context, id string) (osapi.Network, error) {
	f.record("GetNetwork")
	if f.GetNetworkErr != nil {
		return osapi.Network{}, f.GetNetworkErr
	}
	for _, network := range f.Networks {
		if network.ID == id {
			return network, nil
		}
	}
	return osapi.Network{}, ErrNotFound
}

func (f *FakeNetworking) CreateNetwork(ctx context.Context, opts osapi.NetworkCreateOpts) (osapi.Network, error) {
	f.record("CreateNetwork")
	if f.CreateErr != nil {
		return osapi.Network{}, f.CreateErr
	}
	network := osapi.Network{
		ID:           "net-" + opts.Name,
		Name:         opts.Name,
		TenantID:     opts.TenantID,
		Status:       "ACTIVE",
		AdminStateUp: opts.AdminStateUp,
		Shared:       opts.Shared,
		External:     opts.External,
	}
	f.Networks = append(f.Networks, network)
	return network, nil
}

func (f *FakeNetworking) UpdateNetwork(ctx context.Context, id string, opts osapi.NetworkUpdateOpts) (osapi.Network, error) {
	f.record("UpdateNetwork")
	if f.UpdateErr != nil {
		return osapi.Network{}, f.UpdateErr
	}
	for i, network := range f.Networks {
		if network.ID != id {
			continue
		}
		network.Name = opts.Name
		network.AdminStateUp = opts.AdminStateUp
		network.Shared = opts.Shared
		network.External = opts.External
		f.Networks[i] = network
		return network, nil
	}
	return osapi.Network{}, ErrNotFound
}

func (f *FakeNetworking) DeleteNetwork(ctx context.Context, id string) error {
	f.record("DeleteNetwork")
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i, network := range f.Networks {
		if network.ID == id {
			f.Networks = slices.Delete(f.Networks, i, i+1)
			return nil
		}
	}
	return ErrNotFound
}

func (f *FakeNetworking) ListSubnets(ctx context.Context, networkID string) ([]osapi.Subnet, error) {
	f.record("ListSubnets")
	if f.SubnetsErr != nil {
		return nil, f.SubnetsErr
	}
	var result []osapi.Subnet
	for _, subnet := range f.Subnets {
		if subnet.NetworkID == networkID {
			result = append(result, subnet)
		}
	}
	return result, nil
}

func (f *FakeNetworking) ListPorts(ctx context.Context, networkID string) ([]osapi.Port, error) {
	f.record("ListPorts")
	if f.PortsErr != nil {
		return nil, f.PortsErr
	}
	var result []osapi.Port
	for _, port := range f.Ports {
		if port.NetworkID == networkID {
			result = append(result, port)
		}
	}
	return result, nil
}

func (f *FakeNetworking) IsExtensionSupported(ctx context.Context, alias string) (bool, error) {
	f.record("IsExtensionSupported")
	if f.ExtensionsErr != nil {
		return false, f.ExtensionsErr
	}
	return slices.Contains(f.Extensions, alias), nil
}

func (f *FakeNetworking) ListDHCPAgentsHostingNetwork(ctx context.Context, networkID string) ([]osapi.Agent, error) {
	f.record("ListDHCPAgentsHostingNetwork")
	if f.AgentsErr != nil {
		return nil, f.AgentsErr
	}
	return f.Agents[networkID], nil
}

func (f *FakeNetworking) ListFloatingIPs(ctx context.Context) ([]osapi.FloatingIP, error) {
	f.record("ListFloatingIPs")
	if f.FloatingIPsErr != nil {
		return nil, f.FloatingIPsErr
	}
	return f.FloatingIPs, nil
}

func (f *FakeNetworking) ListSecurityGroups(ctx context.Context) ([]osapi.SecurityGroup, error) {
	f.record("ListSecurityGroups")
	if f.SecGroupsErr != nil {
		return nil, f.SecGroupsErr
	}
	return f.SecurityGroups, nil
}
