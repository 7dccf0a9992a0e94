// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"net/http"

	"github.com/cobaltcore-dev/admin-dashboard/internal/admin/instances"
	"github.com/cobaltcore-dev/admin-dashboard/internal/admin/networks"
	"github.com/cobaltcore-dev/admin-dashboard/internal/admin/overview"
	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/internal/web"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/conf"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/monitoring"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"
)

type HTTPAPI interface {
	// Bind the server handlers.
	Init(*http.ServeMux)
}

type httpAPI struct {
	panels []HTTPAPI
}

func NewAPI(
	config conf.DashboardConfig,
	registry *monitoring.Registry,
	compute openstack.ComputeAPI,
	identity openstack.IdentityAPI,
	networking openstack.NetworkingAPI,
) HTTPAPI {
	noticesMonitor := notices.NewMonitor(registry)
	apiMonitor := web.NewAPIMonitor(registry)
	return &httpAPI{panels: []HTTPAPI{
		&overview.Panel{
			Compute:    compute,
			Identity:   identity,
			Networking: networking,
			Notices:    noticesMonitor,
			Monitor:    &apiMonitor,
		},
		&instances.Panel{
			Compute:  compute,
			Identity: identity,
			PageSize: config.PageSize,
			Notices:  noticesMonitor,
			Monitor:  &apiMonitor,
		},
		&networks.Panel{
			Networking: networking,
			Identity:   identity,
			Notices:    noticesMonitor,
			Monitor:    &apiMonitor,
		},
	}}
}

// Init the API mux and bind the handlers of all panels.
func (httpAPI *httpAPI) Init(mux *http.ServeMux) {
	for _, panel := range httpAPI.panels {
		panel.Init(mux)
	}
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, overview.IndexURL, http.StatusFound)
	})
	mux.HandleFunc("GET /admin/{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, overview.IndexURL, http.StatusFound)
	})
}
