// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package openstack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cobaltcore-dev/admin-dashboard/pkg/keystone"
	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"
)

type IdentityAPI interface {
	Init(ctx context.Context) error
	// List all projects, and whether the listing was truncated.
	ListProjects(ctx context.Context) ([]Project, bool, error)
}

type identityAPI struct {
	mon         Monitor
	keystoneAPI keystone.KeystoneClient
	sc          *gophercloud.ServiceClient
}

func NewIdentityAPI(mon Monitor, k keystone.KeystoneClient) IdentityAPI {
	return &identityAPI{mon: mon, keystoneAPI: k}
}

func (api *identityAPI) Init(ctx context.Context) error {
	if err := api.keystoneAPI.Authenticate(ctx); err != nil {
		return fmt.Errorf("failed to authenticate keystone: %w", err)
	}
	provider := api.keystoneAPI.Client()
	serviceType := "identity"
	url, err := api.keystoneAPI.FindEndpoint(api.keystoneAPI.Availability(), serviceType)
	if err != nil {
		return fmt.Errorf("failed to find identity endpoint: %w", err)
	}
	slog.Info("using identity endpoint", "url", url)
	api.sc = &gophercloud.ServiceClient{
		ProviderClient: provider,
		Endpoint:       url,
		Type:           serviceType,
	}
	return nil
}

// All pages are followed, so the listing is never truncated.
func (api *identityAPI) ListProjects(ctx context.Context) ([]Project, bool, error) {
	defer api.mon.observe("identity", "list_projects")()
	pages, err := projects.List(api.sc, nil).AllPages(ctx)
	if err != nil {
		return nil, false, err
	}
	var data = &struct {
		Projects []Project `json:"projects"`
	}{}
	if err := pages.(projects.ProjectPage).ExtractInto(data); err != nil {
		return nil, false, err
	}
	slog.Info("fetched identity data", "label", "projects", "count", len(data.Projects))
	return data.Projects, false, nil
}
