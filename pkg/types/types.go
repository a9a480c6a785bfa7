package types

// Status represents a numeric health status value
type Status int

const (
	StatusUnknown  Status = 0
	StatusOK       Status = 1
	StatusDegraded Status = 2
	StatusFailed   Status = 3
)

// AdapterInfo represents a MegaRAID adapter
type AdapterInfo struct {
	ID              int64   `json:"id"`
	ProductName     string  `json:"product_name"`
	SerialNo        string  `json:"serial_no"`
	FirmwareVersion string  `json:"firmware_version"`
	MemorySizeBytes float64 `json:"memory_size_bytes"`
	VirtualDrives   int64   `json:"virtual_drives"`
	PhysicalDevices int64   `json:"physical_devices"`
}

// EnclosureInfo represents a drive enclosure
type EnclosureInfo struct {
	AdapterID      int64  `json:"adapter_id"`
	ID             int64  `json:"id"`
	NumberOfSlots  int64  `json:"number_of_slots"`
	NumberOfDrives int64  `json:"number_of_drives"`
	Status         string `json:"status"`
}

// LogicalDriveInfo represents a configured virtual drive
type LogicalDriveInfo struct {
	AdapterID  int64   `json:"adapter_id"`
	ID         int64   `json:"id"`
	RaidLevel  int64   `json:"raid_level"`
	State      string  `json:"state"`
	StatusCode Status  `json:"status_code"`
	SizeBytes  float64 `json:"size_bytes"`
	NumDrives  int64   `json:"num_drives"`
}

// PhysicalDriveInfo represents an installed physical drive
type PhysicalDriveInfo struct {
	AdapterID          int64   `json:"adapter_id"`
	EnclosureID        int64   `json:"enclosure_id"`
	Slot               int64   `json:"slot"`
	DeviceID           int64   `json:"device_id"`
	Model              string  `json:"model"`
	FirmwareState      string  `json:"firmware_state"`
	StatusCode         Status  `json:"status_code"`
	SizeBytes          float64 `json:"size_bytes"`
	Temperature        int64   `json:"temperature,omitempty"`
	MediaErrors        int64   `json:"media_errors"`
	PredictiveFailures int64   `json:"predictive_failures"`
	OtherErrors        int64   `json:"other_errors"`
}

// BatteryInfo represents a battery backup unit
type BatteryInfo struct {
	AdapterID           int64  `json:"adapter_id"`
	BatteryType         string `json:"battery_type"`
	State               string `json:"state"`
	StatusCode          Status `json:"status_code"`
	VoltageMV           int64  `json:"voltage_mv"`
	Temperature         int64  `json:"temperature"`
	RelativeCharge      int64  `json:"relative_charge"`
	ReplacementRequired bool   `json:"replacement_required"`
}
