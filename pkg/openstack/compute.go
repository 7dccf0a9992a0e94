// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package openstack

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cobaltcore-dev/admin-dashboard/pkg/keystone"
	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/common/extensions"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/flavors"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/limits"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/usage"
	"github.com/gophercloud/gophercloud/v2/pagination"
	"github.com/sapcc/go-bits/gophercloudext"
)

type ComputeAPI interface {
	// Init the compute api with the endpoint from the keystone catalog.
	Init(ctx context.Context) error
	// List one page of servers, and whether more servers are available.
	ListServers(ctx context.Context, opts ServerListOpts) ([]Server, bool, error)
	// List all flavors, including private ones.
	ListFlavors(ctx context.Context) ([]Flavor, error)
	GetFlavor(ctx context.Context, id string) (Flavor, error)
	// Check if the compute api advertises the extension with the given name.
	ExtensionSupported(ctx context.Context, name string) (bool, error)
	// List the usage of all tenants in the given period.
	ListUsage(ctx context.Context, start, end time.Time) ([]TenantUsage, error)
	// Get the absolute limits of the scoped project.
	GetAbsoluteLimits(ctx context.Context) (AbsoluteLimits, error)
}

type computeAPI struct {
	mon         Monitor
	keystoneAPI keystone.KeystoneClient
	sc          *gophercloud.ServiceClient
	// Project the keystone token is scoped to, empty if unknown.
	projectID string
}

func NewComputeAPI(mon Monitor, k keystone.KeystoneClient) ComputeAPI {
	return &computeAPI{mon: mon, keystoneAPI: k}
}

func (api *computeAPI) Init(ctx context.Context) error {
	if err := api.keystoneAPI.Authenticate(ctx); err != nil {
		return fmt.Errorf("failed to authenticate keystone: %w", err)
	}
	// Automatically fetch the nova endpoint from the keystone service catalog.
	provider := api.keystoneAPI.Client()
	serviceType := "compute"
	url, err := api.keystoneAPI.FindEndpoint(api.keystoneAPI.Availability(), serviceType)
	if err != nil {
		return fmt.Errorf("failed to find nova endpoint: %w", err)
	}
	slog.Info("using nova endpoint", "url", url)
	api.sc = &gophercloud.ServiceClient{
		ProviderClient: provider,
		Endpoint:       url,
		Type:           serviceType,
		// Since microversion 2.47 the server only embeds the flavor
		// details instead of its id, which we need to look it up.
		Microversion: "2.46",
	}
	api.projectID = scopedProjectID(provider)
	return nil
}

func (api *computeAPI) ListServers(ctx context.Context, opts ServerListOpts) ([]Server, bool, error) {
	defer api.mon.observe("compute", "list_servers")()
	lo := servers.ListOpts{AllTenants: opts.AllTenants, Marker: opts.Marker}
	if opts.Limit > 0 {
		// Ask for one more to find out if there is a next page.
		lo.Limit = opts.Limit + 1
	}
	var data = &struct {
		Servers []Server `json:"servers"`
	}{}
	err := servers.List(api.sc, lo).EachPage(ctx, func(_ context.Context, page pagination.Page) (bool, error) {
		// Only the first page is of interest, the marker selects it.
		return false, page.(servers.ServerPage).ExtractInto(data)
	})
	if err != nil {
		return nil, false, err
	}
	hasMore := false
	if opts.Limit > 0 && len(data.Servers) > opts.Limit {
		data.Servers = data.Servers[:opts.Limit]
		hasMore = true
	}
	slog.Info("fetched nova data", "label", "servers", "count", len(data.Servers), "more", hasMore)
	return data.Servers, hasMore, nil
}

func (api *computeAPI) ListFlavors(ctx context.Context) ([]Flavor, error) {
	defer api.mon.observe("compute", "list_flavors")()
	lo := flavors.ListOpts{AccessType: flavors.AllAccess}
	pages, err := flavors.ListDetail(api.sc, lo).AllPages(ctx)
	if err != nil {
		return nil, err
	}
	var data = &struct {
		Flavors []Flavor `json:"flavors"`
	}{}
	if err := pages.(flavors.FlavorPage).ExtractInto(data); err != nil {
		return nil, err
	}
	slog.Info("fetched nova data", "label", "flavors", "count", len(data.Flavors))
	return data.Flavors, nil
}

func (api *computeAPI) GetFlavor(ctx context.Context, id string) (Flavor, error) {
	defer api.mon.observe("compute", "get_flavor")()
	var data struct {
		Flavor Flavor `json:"flavor"`
	}
	if err := flavors.Get(ctx, api.sc, id).ExtractInto(&data); err != nil {
		return Flavor{}, err
	}
	return data.Flavor, nil
}

func (api *computeAPI) ExtensionSupported(ctx context.Context, name string) (bool, error) {
	defer api.mon.observe("compute", "list_extensions")()
	return extensionSupported(ctx, api.sc, name)
}

func (api *computeAPI) ListUsage(ctx context.Context, start, end time.Time) ([]TenantUsage, error) {
	defer api.mon.observe("compute", "list_usage")()
	opts := usage.AllTenantsOpts{Detailed: true, Start: &start, End: &end}
	pages, err := usage.AllTenants(api.sc, opts).AllPages(ctx)
	if err != nil {
		return nil, err
	}
	var data = &struct {
		TenantUsages []TenantUsage `json:"tenant_usages"`
	}{}
	if err := pages.(usage.AllTenantsPage).ExtractInto(data); err != nil {
		return nil, err
	}
	slog.Info("fetched nova data", "label", "tenant_usages", "count", len(data.TenantUsages))
	return data.TenantUsages, nil
}

func (api *computeAPI) GetAbsoluteLimits(ctx context.Context) (AbsoluteLimits, error) {
	defer api.mon.observe("compute", "get_limits")()
	var data struct {
		Limits struct {
			Absolute AbsoluteLimits `json:"absolute"`
		} `json:"limits"`
	}
	opts := limits.GetOpts{TenantID: api.projectID}
	if err := limits.Get(ctx, api.sc, opts).ExtractInto(&data); err != nil {
		return AbsoluteLimits{}, err
	}
	return data.Limits.Absolute, nil
}

// Check the extension list of the service for an extension with the
// given name or alias.
func extensionSupported(ctx context.Context, sc *gophercloud.ServiceClient, name string) (bool, error) {
	pages, err := extensions.List(sc).AllPages(ctx)
	if err != nil {
		return false, err
	}
	exts, err := extensions.ExtractExtensions(pages)
	if err != nil {
		return false, err
	}
	for _, ext := range exts {
		if ext.Name == name || ext.Alias == name {
			return true, nil
		}
	}
	return false, nil
}

// Project the token of the provider is scoped to, empty if unknown.
// Project-bound queries then fall back to the token default.
func scopedProjectID(provider *gophercloud.ProviderClient) string {
	projectID, err := gophercloudext.GetProjectIDFromTokenScope(provider)
	if err != nil {
		slog.Warn("unable to determine scoped project", "error", err)
		return ""
	}
	return projectID
}
