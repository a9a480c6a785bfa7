package collector

import (
	"strconv"
	"strings"

	"megaraid-exporter/internal/utils"
	"megaraid-exporter/pkg/megacli"
	"megaraid-exporter/pkg/types"
)

// asString renders a record property as a string regardless of how coercion
// typed it. Serial numbers and firmware builds sometimes coerce to numbers.
func asString(r megacli.Record, key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

func intOr(r megacli.Record, key string, fallback int64) int64 {
	if v, ok := r.Int(key); ok {
		return v
	}
	return fallback
}

func floatOr(r megacli.Record, key string, fallback float64) float64 {
	if v, ok := r.Float(key); ok {
		return v
	}
	return fallback
}

// AdapterFromRecord builds a typed adapter view from a parsed record.
func AdapterFromRecord(r megacli.Record) types.AdapterInfo {
	return types.AdapterInfo{
		ID:              r.ID(),
		ProductName:     asString(r, "product_name"),
		SerialNo:        asString(r, "serial_no"),
		FirmwareVersion: asString(r, "fw_package_build"),
		MemorySizeBytes: floatOr(r, "memory_size", 0),
		VirtualDrives:   intOr(r, "virtual_drives", 0),
		PhysicalDevices: intOr(r, "physical_devices", 0),
	}
}

// EnclosureFromRecord builds a typed enclosure view from a parsed record.
func EnclosureFromRecord(r megacli.Record) types.EnclosureInfo {
	return types.EnclosureInfo{
		AdapterID:      r.AdapterID(),
		ID:             r.ID(),
		NumberOfSlots:  intOr(r, "number_of_slots", 0),
		NumberOfDrives: intOr(r, "number_of_physical_drives", 0),
		Status:         asString(r, "status"),
	}
}

// LogicalDriveFromRecord builds a typed virtual drive view from a parsed record.
func LogicalDriveFromRecord(r megacli.Record) types.LogicalDriveInfo {
	state := asString(r, "state")
	return types.LogicalDriveInfo{
		AdapterID:  r.AdapterID(),
		ID:         r.ID(),
		RaidLevel:  intOr(r, "raid_level", -1),
		State:      state,
		StatusCode: utils.LogicalDriveStatus(state),
		SizeBytes:  floatOr(r, "size", 0),
		NumDrives:  intOr(r, "number_of_drives", 0),
	}
}

// PhysicalDriveFromRecord builds a typed physical drive view from a parsed record.
func PhysicalDriveFromRecord(r megacli.Record) types.PhysicalDriveInfo {
	state := asString(r, "firmware_state")

	// First inquiry data field is the vendor/model token.
	model := ""
	if fields := strings.Fields(asString(r, "inquiry_data")); len(fields) > 0 {
		model = fields[0]
	}

	size := floatOr(r, "coerced_size", 0)
	if size == 0 {
		size = floatOr(r, "raw_size", 0)
	}

	return types.PhysicalDriveInfo{
		AdapterID:          r.AdapterID(),
		EnclosureID:        intOr(r, "enclosure_id", -1),
		Slot:               intOr(r, "slot_number", -1),
		DeviceID:           intOr(r, "device_id", -1),
		Model:              model,
		FirmwareState:      state,
		StatusCode:         utils.PhysicalDriveStatus(state),
		SizeBytes:          size,
		Temperature:        intOr(r, "drive_temperature", 0),
		MediaErrors:        intOr(r, "media_error_count", 0),
		PredictiveFailures: intOr(r, "predictive_failure_count", 0),
		OtherErrors:        intOr(r, "other_error_count", 0),
	}
}

// BatteryFromRecord builds a typed battery view from a parsed record.
func BatteryFromRecord(r megacli.Record) types.BatteryInfo {
	state := asString(r, "battery_state")
	replacement, _ := r.Bool("battery_replacement_required")

	return types.BatteryInfo{
		AdapterID:           r.AdapterID(),
		BatteryType:         asString(r, "batterytype"),
		State:               state,
		StatusCode:          utils.BatteryStatus(state),
		VoltageMV:           utils.LeadingInt(asString(r, "voltage")),
		Temperature:         intOr(r, "temperature", 0),
		RelativeCharge:      intOr(r, "relative_state_of_charge", 0),
		ReplacementRequired: replacement,
	}
}
