package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"megaraid-exporter/pkg/megacli"
	"megaraid-exporter/pkg/types"
)

func TestAdapterFromRecord(t *testing.T) {
	info := AdapterFromRecord(megacli.Record{
		"id":               int64(1),
		"product_name":     "perc h710 mini",
		"serial_no":        int64(29026),
		"fw_package_build": "21.3.4-0001",
		"memory_size":      536870912.0,
		"virtual_drives":   int64(2),
		"physical_devices": int64(5),
	})

	assert.Equal(t, int64(1), info.ID)
	assert.Equal(t, "perc h710 mini", info.ProductName)
	assert.Equal(t, "29026", info.SerialNo, "numeric serials render as strings")
	assert.Equal(t, "21.3.4-0001", info.FirmwareVersion)
	assert.Equal(t, 536870912.0, info.MemorySizeBytes)
	assert.Equal(t, int64(2), info.VirtualDrives)
	assert.Equal(t, int64(5), info.PhysicalDevices)
}

func TestLogicalDriveFromRecord(t *testing.T) {
	info := LogicalDriveFromRecord(megacli.Record{
		"adapter_id":       int64(0),
		"id":               int64(3),
		"raid_level":       int64(10),
		"state":            "partially degraded",
		"size":             2.0 * 1024 * 1024 * 1024,
		"number_of_drives": int64(4),
	})

	assert.Equal(t, int64(0), info.AdapterID)
	assert.Equal(t, int64(3), info.ID)
	assert.Equal(t, int64(10), info.RaidLevel)
	assert.Equal(t, types.StatusDegraded, info.StatusCode)
	assert.Equal(t, int64(4), info.NumDrives)
}

func TestLogicalDriveFromRecordUnknownRaidLevel(t *testing.T) {
	info := LogicalDriveFromRecord(megacli.Record{
		"adapter_id": int64(0),
		"id":         int64(0),
		"raid_level": "primary-3, secondary-0, raid level qualifier-0",
	})

	assert.Equal(t, int64(-1), info.RaidLevel)
}

func TestPhysicalDriveFromRecord(t *testing.T) {
	info := PhysicalDriveFromRecord(megacli.Record{
		"adapter_id":               int64(0),
		"enclosure_id":             int64(32),
		"slot_number":              int64(4),
		"device_id":                int64(9),
		"inquiry_data":             "seagate st1000nm0023    0004z1w1",
		"firmware_state":           "rebuild",
		"coerced_size":             999653638144.0,
		"drive_temperature":        int64(31),
		"media_error_count":        int64(2),
		"predictive_failure_count": int64(1),
	})

	assert.Equal(t, int64(32), info.EnclosureID)
	assert.Equal(t, int64(4), info.Slot)
	assert.Equal(t, "seagate", info.Model)
	assert.Equal(t, types.StatusDegraded, info.StatusCode)
	assert.Equal(t, 999653638144.0, info.SizeBytes)
	assert.Equal(t, int64(31), info.Temperature)
	assert.Equal(t, int64(2), info.MediaErrors)
	assert.Equal(t, int64(1), info.PredictiveFailures)
}

func TestPhysicalDriveFromRecordRawSizeFallback(t *testing.T) {
	info := PhysicalDriveFromRecord(megacli.Record{
		"adapter_id": int64(0),
		"raw_size":   1000204886016.0,
	})

	assert.Equal(t, 1000204886016.0, info.SizeBytes)
}

func TestBatteryFromRecord(t *testing.T) {
	info := BatteryFromRecord(megacli.Record{
		"adapter_id":                   int64(0),
		"batterytype":                  "itbbu",
		"battery_state":                "discharging",
		"voltage":                      "3863 mv",
		"temperature":                  int64(23),
		"relative_state_of_charge":     int64(94),
		"battery_replacement_required": true,
	})

	assert.Equal(t, "itbbu", info.BatteryType)
	assert.Equal(t, types.StatusDegraded, info.StatusCode)
	assert.Equal(t, int64(3863), info.VoltageMV)
	assert.Equal(t, int64(23), info.Temperature)
	assert.Equal(t, int64(94), info.RelativeCharge)
	assert.True(t, info.ReplacementRequired)
}
