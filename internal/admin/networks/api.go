// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package networks

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/cobaltcore-dev/admin-dashboard/internal/notices"
	"github.com/cobaltcore-dev/admin-dashboard/internal/web"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Networks panel of the admin dashboard.
type Panel struct {
	Networking openstack.NetworkingAPI
	Identity   openstack.IdentityAPI
	Notices    notices.Monitor
	Monitor    *web.APIMonitor
}

func (p *Panel) Init(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin/networks/{$}", p.index)
	mux.HandleFunc("GET /admin/networks/create", p.createForm)
	mux.HandleFunc("POST /admin/networks/create", p.create)
	mux.HandleFunc("GET /admin/networks/{id}/detail", p.detail)
	mux.HandleFunc("GET /admin/networks/{id}/update", p.updateForm)
	mux.HandleFunc("POST /admin/networks/{id}/update", p.update)
	mux.HandleFunc("POST /admin/networks/{id}/delete", p.delete)
}

func (p *Panel) index(w http.ResponseWriter, r *http.Request) {
	callback := p.Monitor.Callback(w, r, "/admin/networks/")
	q := web.NewQueue(w, r, p.Notices, "networks")
	networks := NewIndexView(p.Networking, p.Identity, q).GetData(r.Context())
	content, err := newNetworksTable().Render(networks)
	if err != nil {
		callback.Respond(http.StatusInternalServerError, err, "failed to render networks")
		return
	}
	callback.Page(web.Page{Title: "Networks", Panel: "networks", Notices: q.Notices(), Content: content})
}

func (p *Panel) detail(w http.ResponseWriter, r *http.Request) {
	callback := p.Monitor.Callback(w, r, "/admin/networks/{id}/detail")
	q := web.NewQueue(w, r, p.Notices, "network_detail")
	view := NewDetailView(p.Networking, q, r.PathValue("id"))
	ctx := r.Context()
	detailCtx, err := view.Context(ctx)
	if err != nil {
		p.fail(callback, q, err)
		return
	}
	data := struct {
		Context               DetailContext
		Subnets, Ports, Agents template.HTML
	}{Context: detailCtx}
	if data.Subnets, err = newSubnetsTable().Render(view.Subnets(ctx)); err == nil {
		data.Ports, err = newPortsTable().Render(view.Ports(ctx))
	}
	if err == nil && detailCtx.DHCPAgentSupport {
		data.Agents, err = newAgentsTable().Render(view.Agents(ctx))
	}
	if err != nil {
		callback.Respond(http.StatusInternalServerError, err, "failed to render network")
		return
	}
	content, err := web.Fragment(templates, "detail.html", data)
	if err != nil {
		callback.Respond(http.StatusInternalServerError, err, "failed to render network")
		return
	}
	title := "Network Details: " + detailCtx.Network.Name
	callback.Page(web.Page{Title: title, Panel: "networks", Notices: q.Notices(), Content: content})
}

type formData struct {
	Action   string
	Update   bool
	Form     UpdateForm
	Projects []ProjectChoice
}

func (p *Panel) updateForm(w http.ResponseWriter, r *http.Request) {
	callback := p.Monitor.Callback(w, r, "/admin/networks/{id}/update")
	q := web.NewQueue(w, r, p.Notices, "network_update")
	id := r.PathValue("id")
	initial, err := NewUpdateView(p.Networking, q, id).Initial(r.Context())
	if err != nil {
		p.fail(callback, q, err)
		return
	}
	content, err := web.Fragment(templates, "form.html", formData{
		Action: IndexURL + id + "/update",
		Update: true,
		Form:   initial,
	})
	if err != nil {
		callback.Respond(http.StatusInternalServerError, err, "failed to render form")
		return
	}
	callback.Page(web.Page{Title: "Edit Network", Panel: "networks", Notices: q.Notices(), Content: content})
}

func (p *Panel) update(w http.ResponseWriter, r *http.Request) {
	callback := p.Monitor.Callback(w, r, "/admin/networks/{id}/update")
	q := p.Notices.NewQueue("network_update", web.Logger(r.Context()))
	if err := r.ParseForm(); err != nil {
		callback.Respond(http.StatusBadRequest, err, "invalid form")
		return
	}
	form := parseUpdateForm(r.PathValue("id"), r.PostForm)
	NewUpdateView(p.Networking, q, form.NetworkID).Submit(r.Context(), form)
	callback.Redirect(IndexURL, q)
}

func (p *Panel) createForm(w http.ResponseWriter, r *http.Request) {
	callback := p.Monitor.Callback(w, r, "/admin/networks/create")
	q := web.NewQueue(w, r, p.Notices, "network_create")
	p.renderCreateForm(callback, q, CreateForm{AdminState: true}, NewCreateView(p.Networking, p.Identity, q))
}

func (p *Panel) create(w http.ResponseWriter, r *http.Request) {
	callback := p.Monitor.Callback(w, r, "/admin/networks/create")
	q := p.Notices.NewQueue("network_create", web.Logger(r.Context()))
	if err := r.ParseForm(); err != nil {
		callback.Respond(http.StatusBadRequest, err, "invalid form")
		return
	}
	form := parseCreateForm(r.PostForm)
	view := NewCreateView(p.Networking, p.Identity, q)
	if ok := view.Submit(r.Context(), form); !ok && form.TenantID == "" {
		// Show the form again so the input is not lost.
		p.renderCreateForm(callback, q, form, view)
		return
	}
	callback.Redirect(IndexURL, q)
}

func (p *Panel) renderCreateForm(callback web.MonitoredCallback, q *notices.Queue, form CreateForm, view *CreateView) {
	projects := view.Projects(callback.Context())
	content, err := web.Fragment(templates, "form.html", formData{
		Action: IndexURL + "create",
		Form: UpdateForm{
			Name:       form.Name,
			TenantID:   form.TenantID,
			AdminState: form.AdminState,
			Shared:     form.Shared,
			External:   form.External,
		},
		Projects: projects,
	})
	if err != nil {
		callback.Respond(http.StatusInternalServerError, err, "failed to render form")
		return
	}
	callback.Page(web.Page{Title: "Create Network", Panel: "networks", Notices: q.Notices(), Content: content})
}

func (p *Panel) delete(w http.ResponseWriter, r *http.Request) {
	callback := p.Monitor.Callback(w, r, "/admin/networks/{id}/delete")
	q := p.Notices.NewQueue("networks", web.Logger(r.Context()))
	deleteNetwork(r.Context(), p.Networking, q, r.PathValue("id"))
	callback.Redirect(IndexURL, q)
}

// Redirect if the page cannot be shown, otherwise respond with an error.
func (p *Panel) fail(callback web.MonitoredCallback, q *notices.Queue, err error) {
	var redirect *notices.RedirectError
	if errors.As(err, &redirect) {
		q.Fail(redirect.Msg, redirect.Err)
		callback.Redirect(redirect.URL, q)
		return
	}
	callback.Respond(http.StatusInternalServerError, err, "failed to render page")
}
