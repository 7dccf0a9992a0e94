// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package overview

import (
	"strconv"

	"github.com/cobaltcore-dev/admin-dashboard/internal/tables"
)

func newUsageTable() *tables.Table[Usage] {
	return &tables.Table[Usage]{
		Name: "global_usage",
		Columns: []tables.Column[Usage]{
			{Name: "project", Verbose: "Project Name", Value: func(u Usage) string { return u.ProjectName }},
			{Name: "vcpus", Verbose: "VCPUs", Value: func(u Usage) string { return strconv.Itoa(u.VCPUs) }},
			{Name: "disk", Verbose: "Disk", Value: func(u Usage) string { return tables.DiskGBFormat(float64(u.LocalGB)) }},
			{Name: "memory", Verbose: "RAM", Value: func(u Usage) string { return tables.MBFormat(u.MemoryMB) }},
			{Name: "vcpu_hours", Verbose: "VCPU Hours", Value: func(u Usage) string { return hours(u.VCPUHours) }},
			{Name: "disk_hours", Verbose: "Disk GB Hours", Value: func(u Usage) string { return hours(u.DiskGBHours) }},
		},
		RowID: func(u Usage) string { return u.TenantID },
		Empty: "No usage to display.",
	}
}
