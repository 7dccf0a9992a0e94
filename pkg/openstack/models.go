// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package openstack

// Compute server as returned by nova with admin attributes.
type Server struct {
	ID         string                     `json:"id"`
	Name       string                     `json:"name"`
	TenantID   string                     `json:"tenant_id"`
	Status     string                     `json:"status"`
	Host       string                     `json:"OS-EXT-SRV-ATTR:host"`
	TaskState  *string                    `json:"OS-EXT-STS:task_state"`
	PowerState int                        `json:"OS-EXT-STS:power_state"`
	Addresses  map[string][]ServerAddress `json:"addresses"`
	Created    string                     `json:"created"`
	Flavor     ServerFlavorRef            `json:"flavor"`
}

// Reference to the flavor a server was booted from.
// Only populated with microversions below 2.47.
type ServerFlavorRef struct {
	ID string `json:"id"`
}

type ServerAddress struct {
	Addr    string `json:"addr"`
	Version int    `json:"version"`
	Type    string `json:"OS-EXT-IPS:type"`
}

type Flavor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	VCPUs     int    `json:"vcpus"`
	RAM       int    `json:"ram"`
	Disk      int    `json:"disk"`
	Ephemeral int    `json:"OS-FLV-EXT-DATA:ephemeral"`
	IsPublic  bool   `json:"os-flavor-access:is_public"`
}

// Keystone project.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DomainID    string `json:"domain_id"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

// Neutron network with provider and external attributes.
type Network struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	TenantID        string   `json:"tenant_id"`
	Status          string   `json:"status"`
	AdminStateUp    bool     `json:"admin_state_up"`
	Shared          bool     `json:"shared"`
	External        bool     `json:"router:external"`
	Subnets         []string `json:"subnets"`
	NetworkType     string   `json:"provider:network_type"`
	PhysicalNetwork string   `json:"provider:physical_network"`
	SegmentationID  *int     `json:"provider:segmentation_id"`
	MTU             int      `json:"mtu"`
}

type Subnet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NetworkID  string `json:"network_id"`
	CIDR       string `json:"cidr"`
	IPVersion  int    `json:"ip_version"`
	GatewayIP  string `json:"gateway_ip"`
	EnableDHCP bool   `json:"enable_dhcp"`
}

type Port struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	NetworkID    string    `json:"network_id"`
	FixedIPs     []FixedIP `json:"fixed_ips"`
	MACAddress   string    `json:"mac_address"`
	DeviceOwner  string    `json:"device_owner"`
	DeviceID     string    `json:"device_id"`
	Status       string    `json:"status"`
	AdminStateUp bool      `json:"admin_state_up"`
}

type FixedIP struct {
	SubnetID  string `json:"subnet_id"`
	IPAddress string `json:"ip_address"`
}

// Neutron agent, e.g. a dhcp agent hosting a network.
type Agent struct {
	ID                 string `json:"id"`
	Host               string `json:"host"`
	AgentType          string `json:"agent_type"`
	Binary             string `json:"binary"`
	Alive              bool   `json:"alive"`
	AdminStateUp       bool   `json:"admin_state_up"`
	HeartbeatTimestamp string `json:"heartbeat_timestamp"`
}

// Usage of a single tenant over a period, from os-simple-tenant-usage.
type TenantUsage struct {
	TenantID           string        `json:"tenant_id"`
	ServerUsages       []ServerUsage `json:"server_usages"`
	TotalHours         float64       `json:"total_hours"`
	TotalVCPUsUsage    float64       `json:"total_vcpus_usage"`
	TotalMemoryMBUsage float64       `json:"total_memory_mb_usage"`
	TotalLocalGBUsage  float64       `json:"total_local_gb_usage"`
	Start              string        `json:"start"`
	Stop               string        `json:"stop"`
}

type ServerUsage struct {
	InstanceID string  `json:"instance_id"`
	Name       string  `json:"name"`
	Hours      float64 `json:"hours"`
	VCPUs      int     `json:"vcpus"`
	MemoryMB   int     `json:"memory_mb"`
	LocalGB    int     `json:"local_gb"`
	Flavor     string  `json:"flavor"`
	State      string  `json:"state"`
	StartedAt  string  `json:"started_at"`
	// Null while the server is still running.
	EndedAt *string `json:"ended_at"`
	Uptime  int     `json:"uptime"`
}

// Absolute compute limits of the scoped project.
type AbsoluteLimits struct {
	MaxTotalCores           int `json:"maxTotalCores"`
	MaxTotalInstances       int `json:"maxTotalInstances"`
	MaxTotalRAMSize         int `json:"maxTotalRAMSize"`
	TotalCoresUsed          int `json:"totalCoresUsed"`
	TotalInstancesUsed      int `json:"totalInstancesUsed"`
	TotalRAMUsed            int `json:"totalRAMUsed"`
	MaxTotalFloatingIPs     int `json:"maxTotalFloatingIps"`
	TotalFloatingIPsUsed    int `json:"totalFloatingIpsUsed"`
	MaxSecurityGroups       int `json:"maxSecurityGroups"`
	TotalSecurityGroupsUsed int `json:"totalSecurityGroupsUsed"`
}

type FloatingIP struct {
	ID                string `json:"id"`
	FloatingIPAddress string `json:"floating_ip_address"`
	ProjectID         string `json:"project_id"`
	Status            string `json:"status"`
}

type SecurityGroup struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"project_id"`
}

// Options for listing one page of servers.
type ServerListOpts struct {
	Marker     string
	Limit      int
	AllTenants bool
}

type NetworkCreateOpts struct {
	Name         string
	TenantID     string
	AdminStateUp bool
	Shared       bool
	External     bool
}

type NetworkUpdateOpts struct {
	Name         string
	AdminStateUp bool
	Shared       bool
	External     bool
}
