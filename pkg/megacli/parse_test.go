package megacli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adapterFixture = `==============================================================================
Adapter #0

              Versions
          ================
Product Name    : PERC H710 Mini
Serial No       : 29F026R
FW Package Build: 21.3.4-0001

              HW Configuration
          ================
Memory Size      : 512MB
BBU              : Present

              Device Present
          ================
Virtual Drives    : 2
  Degraded        : 0
  Offline         : 0
Physical Devices  : 5
  Disks           : 4

Adapter #1

Product Name    : PERC H810 Adapter
Serial No       : 3AB102X
Memory Size      : 1024MB
Virtual Drives    : 1
Physical Devices  : 9

Exit Code: 0x00
`

var logicalDriveFixture = `Adapter 0 -- Virtual Drive Information:
Virtual Drive: 0 (Target Id: 0)
Name                :
RAID Level          : Primary-5, Secondary-0, RAID Level Qualifier-3
Size                : 2.728 TB
Sector Size         : 512
Parity Size         : 931.0 GB
State               : Optimal
Strip Size          : 64 KB
Number Of Drives    : 4
Default Cache Policy: WriteBack, ReadAhead, Direct, No Write Cache if Bad BBU
Current Access Policy: Read/Write
Disk Cache Policy   : Disk's Default
Virtual Drive: 1 (Target Id: 1)
Name                :
RAID Level          : Primary-1, Secondary-0, RAID Level Qualifier-0
Size                : 931.0 GB
State               : Degraded
Strip Size          : 64 KB
Number Of Drives    : 2

Exit Code: 0x00
`

var physicalDriveFixture = `Adapter #0

Enclosure Device ID: 32
Slot Number: 0
Drive's position: DiskGroup: 0, Span: 0, Arm: 0
Enclosure position: 1
Device Id: 4
Sequence Number: 2
Media Error Count: 0
Other Error Count: 0
Predictive Failure Count: 0
PD Type: SAS
Raw Size: 279.396 GB [0x22ecb25c Sectors]
Coerced Size: 278.875 GB [0x22dcb25c Sectors]
Firmware state: Online, Spun Up
Inquiry Data: SEAGATE ST9300605SS     0004S0M3J5EV
Commissioned Spare : No
Emergency Spare : No
Drive Temperature :28C (82.40 F)

Enclosure Device ID: 32
Slot Number: 1
Device Id: 5
Media Error Count: 11
Firmware state: Rebuild
Inquiry Data: SEAGATE ST9300605SS     0004S0M3J2XX
Drive Temperature :31C (87.80 F)

Exit Code: 0x00
`

var enclosureFixture = `    Number of enclosures on adapter 0 -- 1

    Enclosure 0:
    Device ID                     : 32
    Number of Slots               : 8
    Number of Power Supplies      : 0
    Number of Fans                : 0
    Number of Physical Drives     : 5
    Status                        : Normal
    Enclosure Serial Number       : N/A

Exit Code: 0x00
`

var bbuFixture = `BBU status for Adapter: 0

BatteryType: iTBBU
Voltage: 3863 mV
Current: 0 mA
Temperature: 23 C
Battery State: Optimal

BBU Capacity Info for Adapter: 0

Relative State of Charge: 94 %
Absolute State of charge: 82 %
Remaining Capacity: 803 mAh
Full Charge Capacity: 850 mAh

BBU Properties for Adapter: 0

Auto Learn Period: 90 d
Learn Delay Interval: 0 Hours
Battery Replacement required : No

Exit Code: 0x00
`

func newFixtureClient(stdout string) (*Client, *fakeRunner) {
	runner := &fakeRunner{stdout: stdout}
	return NewWithRunner("megacli", runner), runner
}

func TestAdapters(t *testing.T) {
	client, runner := newFixtureClient(adapterFixture)

	adapters, err := client.Adapters(context.Background())
	require.NoError(t, err)
	require.Len(t, adapters, 2)
	assert.Equal(t, []string{"-AdpAllInfo", "-aAll", "-NoLog"}, runner.gotArgs)

	first := adapters[0]
	assert.Equal(t, int64(0), first.ID())
	name, _ := first.String("product_name")
	assert.Equal(t, "perc h710 mini", name)
	memory, ok := first.Float("memory_size")
	require.True(t, ok)
	assert.Equal(t, 512.0*1024*1024, memory)
	vds, _ := first.Int("virtual_drives")
	assert.Equal(t, int64(2), vds)
	pds, _ := first.Int("physical_devices")
	assert.Equal(t, int64(5), pds)
	_, hasExitCode := first["exit_code"]
	assert.False(t, hasExitCode)

	second := adapters[1]
	assert.Equal(t, int64(1), second.ID())
	name, _ = second.String("product_name")
	assert.Equal(t, "perc h810 adapter", name)
}

func TestLogicalDrives(t *testing.T) {
	client, runner := newFixtureClient(logicalDriveFixture)

	drives, err := client.LogicalDrives(context.Background())
	require.NoError(t, err)
	require.Len(t, drives, 2)
	assert.Equal(t, []string{"-LDInfo", "-LAll", "-aAll", "-NoLog"}, runner.gotArgs)

	first := drives[0]
	assert.Equal(t, int64(0), first.AdapterID())
	assert.Equal(t, int64(0), first.ID())

	level, ok := first.Int("raid_level")
	require.True(t, ok, "raid level phrase should map to a numeric level")
	assert.Equal(t, int64(5), level)

	size, _ := first.Float("size")
	assert.Equal(t, 2.728*1024*1024*1024*1024, size)
	strip, _ := first.Float("strip_size")
	assert.Equal(t, 65536.0, strip)
	state, _ := first.String("state")
	assert.Equal(t, "optimal", state)
	drivesCount, _ := first.Int("number_of_drives")
	assert.Equal(t, int64(4), drivesCount)

	second := drives[1]
	assert.Equal(t, int64(1), second.ID())
	level, _ = second.Int("raid_level")
	assert.Equal(t, int64(1), level)
	state, _ = second.String("state")
	assert.Equal(t, "degraded", state)
}

func TestPhysicalDrives(t *testing.T) {
	client, runner := newFixtureClient(physicalDriveFixture)

	drives, err := client.PhysicalDrives(context.Background())
	require.NoError(t, err)
	require.Len(t, drives, 2)
	assert.Equal(t, []string{"-PDList", "-aAll", "-NoLog"}, runner.gotArgs)

	first := drives[0]
	assert.Equal(t, int64(0), first.AdapterID())
	enclosure, _ := first.Int("enclosure_id")
	assert.Equal(t, int64(32), enclosure)
	slot, _ := first.Int("slot_number")
	assert.Equal(t, int64(0), slot)
	size, _ := first.Float("coerced_size")
	assert.Equal(t, 278.875*1024*1024*1024, size)
	temp, _ := first.Int("drive_temperature")
	assert.Equal(t, int64(28), temp)
	spare, ok := first.Bool("commissioned_spare")
	require.True(t, ok)
	assert.False(t, spare)
	state, _ := first.String("firmware_state")
	assert.Equal(t, "online, spun up", state)

	second := drives[1]
	slot, _ = second.Int("slot_number")
	assert.Equal(t, int64(1), slot)
	mediaErrors, _ := second.Int("media_error_count")
	assert.Equal(t, int64(11), mediaErrors)
	state, _ = second.String("firmware_state")
	assert.Equal(t, "rebuild", state)
}

func TestEnclosures(t *testing.T) {
	client, runner := newFixtureClient(enclosureFixture)

	enclosures, err := client.Enclosures(context.Background())
	require.NoError(t, err)
	require.Len(t, enclosures, 1)
	assert.Equal(t, []string{"-EncInfo", "-aALL", "-NoLog"}, runner.gotArgs)

	enc := enclosures[0]
	assert.Equal(t, int64(0), enc.AdapterID())
	assert.Equal(t, int64(0), enc.ID())
	slots, _ := enc.Int("number_of_slots")
	assert.Equal(t, int64(8), slots)
	drives, _ := enc.Int("number_of_physical_drives")
	assert.Equal(t, int64(5), drives)
	status, _ := enc.String("status")
	assert.Equal(t, "normal", status)

	serial, present := enc["enclosure_serial_number"]
	assert.True(t, present)
	assert.Nil(t, serial)
}

func TestBatteryBackupUnits(t *testing.T) {
	client, runner := newFixtureClient(bbuFixture)

	units, err := client.BatteryBackupUnits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"-AdpBbuCmd", "-aAll", "-NoLog"}, runner.gotArgs)

	// The capacity and properties section banners are plain "key:value"
	// lines, so all sections merge into one record per adapter.
	require.Len(t, units, 1)

	bbu := units[0]
	assert.Equal(t, int64(0), bbu.AdapterID())
	batteryType, _ := bbu.String("batterytype")
	assert.Equal(t, "itbbu", batteryType)
	temp, _ := bbu.Int("temperature")
	assert.Equal(t, int64(23), temp)
	state, _ := bbu.String("battery_state")
	assert.Equal(t, "optimal", state)
	voltage, _ := bbu.String("voltage")
	assert.Equal(t, "3863 mv", voltage)
	charge, _ := bbu.Int("relative_state_of_charge")
	assert.Equal(t, int64(94), charge)
	learnPeriod, _ := bbu.Int("auto_learn_period")
	assert.Equal(t, int64(90*24*60*60), learnPeriod)
	replacement, _ := bbu.Bool("battery_replacement_required")
	assert.False(t, replacement)
}

func TestParseMalformedInput(t *testing.T) {
	testCases := []struct {
		name   string
		stdout string
	}{
		{"empty output", ""},
		{"garbage only", "random text\nwith no headers\n1234\n"},
		{"properties before any header", "state : optimal\nsize : 1.0 gb\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newFixtureClient(tc.stdout)
			drives, err := client.LogicalDrives(context.Background())
			require.NoError(t, err)
			assert.Empty(t, drives)
		})
	}
}

func TestParseTruncatedInput(t *testing.T) {
	// Output cut off mid-record still yields the open record.
	client, _ := newFixtureClient("Adapter 0 -- Virtual Drive Information:\nVirtual Drive: 0 (Target Id: 0)\nState : Optimal\n")

	drives, err := client.LogicalDrives(context.Background())
	require.NoError(t, err)
	require.Len(t, drives, 1)
	state, _ := drives[0].String("state")
	assert.Equal(t, "optimal", state)
}

func TestParseAdapterHeaderClosesChild(t *testing.T) {
	// A new adapter header while a drive record is open must emit the
	// drive before switching adapters.
	out := `Adapter 0 -- Virtual Drive Information:
Virtual Drive: 0 (Target Id: 0)
State : Optimal
Adapter 1 -- Virtual Drive Information:
Virtual Drive: 0 (Target Id: 0)
State : Degraded
`
	client, _ := newFixtureClient(out)

	drives, err := client.LogicalDrives(context.Background())
	require.NoError(t, err)
	require.Len(t, drives, 2)
	assert.Equal(t, int64(0), drives[0].AdapterID())
	assert.Equal(t, int64(1), drives[1].AdapterID())
}
