// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package instances

import (
	"net/http"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/internal/tables"
	"github.com/cobaltcore-dev/admin-dashboard/internal/web"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"
)

// Instances panel of the admin dashboard.
type Panel struct {
	Compute  openstack.ComputeAPI
	Identity openstack.IdentityAPI
	PageSize int
	Notices  notices.Monitor
	Monitor  *web.APIMonitor
}

func (p *Panel) Init(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin/instances/{$}", p.index)
}

func (p *Panel) index(w http.ResponseWriter, r *http.Request) {
	callback := p.Monitor.Callback(w, r, "/admin/instances/")
	q := web.NewQueue(w, r, p.Notices, "instances")
	view := NewIndexView(p.Compute, p.Identity, q, p.PageSize)
	instances, more := view.GetData(r.Context(), r.URL.Query().Get(tables.MarkerParam))
	content, err := newTable(more).Render(instances)
	if err != nil {
		callback.Respond(http.StatusInternalServerError, err, "failed to render instances")
		return
	}
	callback.Page(web.Page{
		Title:   "All Instances",
		Panel:   "instances",
		Notices: q.Notices(),
		Content: content,
	})
}
