package types

// HealthResponse represents the JSON health response
type HealthResponse struct {
	Status         string              `json:"status"`
	Service        string              `json:"service"`
	Version        string              `json:"version"`
	Timestamp      string              `json:"timestamp"`
	ToolVersion    string              `json:"tool_version,omitempty"`
	Summary        Summary             `json:"summary"`
	Adapters       []AdapterInfo       `json:"adapters"`
	Enclosures     []EnclosureInfo     `json:"enclosures,omitempty"`
	LogicalDrives  []LogicalDriveInfo  `json:"logical_drives"`
	PhysicalDrives []PhysicalDriveInfo `json:"physical_drives"`
	Batteries      []BatteryInfo       `json:"batteries,omitempty"`
}

// Summary aggregates health counts across all adapters
type Summary struct {
	Adapters              int `json:"adapters"`
	Enclosures            int `json:"enclosures"`
	LogicalDrives         int `json:"logical_drives"`
	OptimalLogicalDrives  int `json:"optimal_logical_drives"`
	DegradedLogicalDrives int `json:"degraded_logical_drives"`
	FailedLogicalDrives   int `json:"failed_logical_drives"`
	PhysicalDrives        int `json:"physical_drives"`
	HealthyPhysicalDrives int `json:"healthy_physical_drives"`
	FailedPhysicalDrives  int `json:"failed_physical_drives"`
	Batteries             int `json:"batteries"`
	HealthyBatteries      int `json:"healthy_batteries"`
}
