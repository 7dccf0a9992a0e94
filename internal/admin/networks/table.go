// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package networks

import (
	"net/http"
	"strings"

	"github.com/cobaltcore-dev/admin-dashboard/internal/tables"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"
)

func detailURL(n Network) string { return IndexURL + n.ID + "/detail" }

var rowActions = []tables.Action[Network]{
	{
		Name:    "update",
		Verbose: "Edit Network",
		URL:     func(n Network) string { return IndexURL + n.ID + "/update" },
	},
	{
		Name:    "delete",
		Verbose: "Delete Network",
		Method:  http.MethodPost,
		URL:     func(n Network) string { return IndexURL + n.ID + "/delete" },
		Danger:  true,
	},
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func newNetworksTable() *tables.Table[Network] {
	return &tables.Table[Network]{
		Name: "networks",
		Columns: []tables.Column[Network]{
			{Name: "tenant", Verbose: "Project", Value: func(n Network) string { return n.TenantName.UnwrapOr("-") }},
			{Name: "name", Verbose: "Network Name", Value: Network.DisplayName, Link: detailURL},
			{Name: "subnets", Verbose: "Subnets Associated", Value: func(n Network) string { return strings.Join(n.Subnets, ", ") }},
			{Name: "num_agents", Verbose: "DHCP Agents", Value: func(n Network) string { return n.NumAgents }},
			{Name: "shared", Verbose: "Shared", Value: func(n Network) string { return yesNo(n.Shared) }},
			{Name: "external", Verbose: "External", Value: func(n Network) string { return yesNo(n.External) }},
			{Name: "status", Verbose: "Status", Value: func(n Network) string { return tables.StatusDisplayChoices.Label(n.Status) }},
			{Name: "admin_state", Verbose: "Admin State", Value: func(n Network) string {
				return tables.AdminStateDisplayChoices.Label(adminState(n.AdminStateUp))
			}},
		},
		RowActions:   rowActions,
		TableActions: []tables.Link{{Verbose: "Create Network", URL: IndexURL + "create"}},
		RowID:        func(n Network) string { return n.ID },
		BaseURL:      IndexURL,
		Empty:        "No networks to display.",
	}
}

func ipVersion(v int) string {
	if v == 6 {
		return "IPv6"
	}
	return "IPv4"
}

func newSubnetsTable() *tables.Table[openstack.Subnet] {
	return &tables.Table[openstack.Subnet]{
		Name: "subnets",
		Columns: []tables.Column[openstack.Subnet]{
			{Name: "name", Verbose: "Name", Value: func(s openstack.Subnet) string { return s.Name }},
			{Name: "cidr", Verbose: "Network Address", Value: func(s openstack.Subnet) string { return s.CIDR }},
			{Name: "ip_version", Verbose: "IP Version", Value: func(s openstack.Subnet) string { return ipVersion(s.IPVersion) }},
			{Name: "gateway_ip", Verbose: "Gateway IP", Value: func(s openstack.Subnet) string { return s.GatewayIP }},
		},
		RowID: func(s openstack.Subnet) string { return s.ID },
		Empty: "No subnets to display.",
	}
}

// Ports without name are shown by their short id.
func portName(p openstack.Port) string {
	if p.Name != "" {
		return p.Name
	}
	if len(p.ID) > 13 {
		return "(" + p.ID[:13] + ")"
	}
	return "(" + p.ID + ")"
}

func fixedIPs(p openstack.Port) string {
	ips := make([]string, 0, len(p.FixedIPs))
	for _, ip := range p.FixedIPs {
		ips = append(ips, ip.IPAddress)
	}
	return strings.Join(ips, ", ")
}

func attachedDevice(p openstack.Port) string {
	if p.DeviceOwner == "" {
		return "Detached"
	}
	return p.DeviceOwner
}

func newPortsTable() *tables.Table[openstack.Port] {
	return &tables.Table[openstack.Port]{
		Name: "ports",
		Columns: []tables.Column[openstack.Port]{
			{Name: "name", Verbose: "Name", Value: portName},
			{Name: "fixed_ips", Verbose: "Fixed IPs", Value: fixedIPs},
			{Name: "device_owner", Verbose: "Attached Device", Value: attachedDevice},
			{Name: "status", Verbose: "Status", Value: func(p openstack.Port) string { return tables.StatusDisplayChoices.Label(p.Status) }},
			{Name: "admin_state", Verbose: "Admin State", Value: func(p openstack.Port) string {
				return tables.AdminStateDisplayChoices.Label(adminState(p.AdminStateUp))
			}},
		},
		RowID: func(p openstack.Port) string { return p.ID },
		Empty: "No ports to display.",
	}
}

func newAgentsTable() *tables.Table[openstack.Agent] {
	return &tables.Table[openstack.Agent]{
		Name: "agents",
		Columns: []tables.Column[openstack.Agent]{
			{Name: "host", Verbose: "Host", Value: func(a openstack.Agent) string { return a.Host }},
			{Name: "status", Verbose: "Status", Value: func(a openstack.Agent) string {
				if a.Alive {
					return "Up"
				}
				return "Down"
			}},
			{Name: "admin_state", Verbose: "Admin State", Value: func(a openstack.Agent) string {
				return tables.AdminStateDisplayChoices.Label(adminState(a.AdminStateUp))
			}},
			{Name: "heartbeat_timestamp", Verbose: "Updated At", Value: func(a openstack.Agent) string { return a.HeartbeatTimestamp }},
		},
		RowID: func(a openstack.Agent) string { return a.ID },
		Empty: "No DHCP agents to display.",
	}
}
