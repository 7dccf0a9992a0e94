// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package networks

import (
	"cmp"
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/internal/reqcache"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"
)

// Values of the network edit form.
type UpdateForm struct {
	NetworkID  string
	TenantID   string
	Name       string
	AdminState bool
	Shared     bool
	External   bool
}

// Read the form values, unchecked boxes are not submitted.
func parseUpdateForm(networkID string, values url.Values) UpdateForm {
	return UpdateForm{
		NetworkID:  networkID,
		TenantID:   values.Get("tenant_id"),
		Name:       strings.TrimSpace(values.Get("name")),
		AdminState: checked(values, "admin_state"),
		Shared:     checked(values, "shared"),
		External:   checked(values, "external"),
	}
}

func checked(values url.Values, key string) bool {
	switch strings.ToLower(values.Get(key)) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}

// Seeds and applies the network edit form.
type UpdateView struct {
	networking openstack.NetworkingAPI
	notices    *notices.Queue
	network    *reqcache.Lazy[openstack.Network]
}

func NewUpdateView(networking openstack.NetworkingAPI, q *notices.Queue, networkID string) *UpdateView {
	return &UpdateView{
		networking: networking,
		notices:    q,
		network:    newNetworkCache(networking, networkID),
	}
}

// Initial form values from the current network record.
func (v *UpdateView) Initial(ctx context.Context) (UpdateForm, error) {
	network, err := v.network.Get(ctx)
	if err != nil {
		return UpdateForm{}, err
	}
	return UpdateForm{
		NetworkID:  network.ID,
		TenantID:   network.TenantID,
		Name:       network.Name,
		AdminState: network.AdminStateUp,
		Shared:     network.Shared,
		External:   network.External,
	}, nil
}

// Apply the form and queue the outcome.
func (v *UpdateView) Submit(ctx context.Context, form UpdateForm) bool {
	_, err := v.networking.UpdateNetwork(ctx, form.NetworkID, openstack.NetworkUpdateOpts{
		Name:         form.Name,
		AdminStateUp: form.AdminState,
		Shared:       form.Shared,
		External:     form.External,
	})
	if err != nil {
		v.notices.Fail("Failed to update network "+form.Name, err)
		return false
	}
	v.notices.Success(fmt.Sprintf("Network %s was successfully updated.", form.Name))
	return true
}

// Values of the network create form.
type CreateForm struct {
	Name       string
	TenantID   string
	AdminState bool
	Shared     bool
	External   bool
}

func parseCreateForm(values url.Values) CreateForm {
	return CreateForm{
		Name:       strings.TrimSpace(values.Get("name")),
		TenantID:   values.Get("tenant_id"),
		AdminState: checked(values, "admin_state"),
		Shared:     checked(values, "shared"),
		External:   checked(values, "external"),
	}
}

// Project choice of the create form.
type ProjectChoice struct {
	ID   string
	Name string
}

// Creates networks on behalf of any project.
type CreateView struct {
	networking openstack.NetworkingAPI
	identity   openstack.IdentityAPI
	notices    *notices.Queue
}

func NewCreateView(networking openstack.NetworkingAPI, identity openstack.IdentityAPI, q *notices.Queue) *CreateView {
	return &CreateView{networking: networking, identity: identity, notices: q}
}

// Projects a network can be created for, sorted by name.
func (v *CreateView) Projects(ctx context.Context) []ProjectChoice {
	projects := notices.Attempt(v.notices, "Unable to retrieve project list.", nil,
		func() ([]openstack.Project, error) {
			projects, _, err := v.identity.ListProjects(ctx)
			return projects, err
		},
	)
	choices := make([]ProjectChoice, 0, len(projects))
	for _, p := range projects {
		choices = append(choices, ProjectChoice{ID: p.ID, Name: p.Name})
	}
	sortChoices(choices)
	return choices
}

// Create the network and queue the outcome.
func (v *CreateView) Submit(ctx context.Context, form CreateForm) bool {
	if form.TenantID == "" {
		v.notices.Error("Project is required.")
		return false
	}
	network, err := v.networking.CreateNetwork(ctx, openstack.NetworkCreateOpts{
		Name:         form.Name,
		TenantID:     form.TenantID,
		AdminStateUp: form.AdminState,
		Shared:       form.Shared,
		External:     form.External,
	})
	if err != nil {
		v.notices.Fail("Failed to create network "+form.Name, err)
		return false
	}
	v.notices.Success(fmt.Sprintf("Network %s was successfully created.", Network{Network: network}.DisplayName()))
	return true
}

// Delete the network and queue the outcome.
func deleteNetwork(ctx context.Context, networking openstack.NetworkingAPI, q *notices.Queue, networkID string) {
	name := networkID
	if network, err := networking.GetNetwork(ctx, networkID); err == nil && network.Name != "" {
		name = network.Name
	}
	if err := networking.DeleteNetwork(ctx, networkID); err != nil {
		q.Fail("Unable to delete network: "+name, err)
		return
	}
	q.Success("Deleted Network: " + name)
}

func sortChoices(choices []ProjectChoice) {
	slices.SortFunc(choices, func(a, b ProjectChoice) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			strings.Compare(a.ID, b.ID),
		)
	})
}
