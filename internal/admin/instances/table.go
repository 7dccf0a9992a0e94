// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package instances

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cobaltcore-dev/admin-dashboard/internal/tables"
)

var statusDisplayChoices = tables.DisplayChoices{
	{Value: "active", Label: "Active"},
	{Value: "shutoff", Label: "Shutoff"},
	{Value: "suspended", Label: "Suspended"},
	{Value: "paused", Label: "Paused"},
	{Value: "error", Label: "Error"},
	{Value: "resize", Label: "Resize/Migrate"},
	{Value: "verify_resize", Label: "Confirm or Revert Resize/Migrate"},
	{Value: "revert_resize", Label: "Revert Resize/Migrate"},
	{Value: "reboot", Label: "Reboot"},
	{Value: "hard_reboot", Label: "Hard Reboot"},
	{Value: "password", Label: "Password"},
	{Value: "rebuild", Label: "Rebuild"},
	{Value: "migrating", Label: "Migrating"},
	{Value: "build", Label: "Build"},
	{Value: "rescue", Label: "Rescue"},
	{Value: "deleted", Label: "Deleted"},
	{Value: "soft_deleted", Label: "Soft Deleted"},
	{Value: "shelved", Label: "Shelved"},
	{Value: "shelved_offloaded", Label: "Shelved Offloaded"},
}

var powerStates = map[int]string{
	0: "No State",
	1: "Running",
	2: "Blocked",
	3: "Paused",
	4: "Shut Down",
	5: "Shutoff",
	6: "Crashed",
	7: "Suspended",
	8: "Failed",
	9: "Building",
}

// Describe the flavor, e.g. "m1.tiny | 512MB RAM | 1 VCPU | 1GB Disk".
func sizeLabel(inst Instance) string {
	flavor, ok := inst.FullFlavor.Unpack()
	if !ok {
		return "Not available"
	}
	vcpus := fmt.Sprintf("%d VCPU", flavor.VCPUs)
	if flavor.VCPUs != 1 {
		vcpus += "s"
	}
	return fmt.Sprintf("%s | %s RAM | %s | %s Disk",
		flavor.Name, tables.MBFormat(flavor.RAM), vcpus, tables.DiskGBFormat(float64(flavor.Disk)))
}

// All fixed and floating addresses of the instance.
func addressLabel(inst Instance) string {
	networks := make([]string, 0, len(inst.Addresses))
	for network := range inst.Addresses {
		networks = append(networks, network)
	}
	sort.Strings(networks)
	var addrs []string
	for _, network := range networks {
		for _, addr := range inst.Addresses[network] {
			addrs = append(addrs, addr.Addr)
		}
	}
	return strings.Join(addrs, ", ")
}

func taskLabel(inst Instance) string {
	if inst.TaskState == nil {
		return "None"
	}
	return strings.ReplaceAll(*inst.TaskState, "_", " ")
}

func powerStateLabel(inst Instance) string {
	if label, ok := powerStates[inst.PowerState]; ok {
		return label
	}
	return "No State"
}

func createdLabel(inst Instance) string {
	created, err := time.Parse(time.RFC3339, inst.Created)
	if err != nil {
		return inst.Created
	}
	return created.UTC().Format("2006-01-02 15:04")
}

func newTable(more bool) *tables.Table[Instance] {
	return &tables.Table[Instance]{
		Name: "instances",
		Columns: []tables.Column[Instance]{
			{Name: "tenant", Verbose: "Project", Value: func(i Instance) string { return i.TenantName.UnwrapOr("-") }},
			{Name: "host", Verbose: "Host", Value: func(i Instance) string { return i.Host }},
			{Name: "name", Verbose: "Name", Value: func(i Instance) string { return i.Name }},
			{Name: "ip", Verbose: "IP Address", Value: addressLabel},
			{Name: "size", Verbose: "Size", Value: sizeLabel},
			{Name: "status", Verbose: "Status", Value: func(i Instance) string { return statusDisplayChoices.Label(i.Status) }},
			{Name: "task", Verbose: "Task", Value: taskLabel},
			{Name: "state", Verbose: "Power State", Value: powerStateLabel},
			{Name: "created", Verbose: "Created", Value: createdLabel},
		},
		RowID:   func(i Instance) string { return i.ID },
		More:    more,
		BaseURL: "/admin/instances/",
		Empty:   "No instances to display.",
	}
}
