package collector

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"megaraid-exporter/internal/metrics"
	"megaraid-exporter/pkg/megacli"
	"megaraid-exporter/pkg/types"
)

// Collector handles metric collection
type Collector struct {
	client   *megacli.Client
	metrics  *metrics.Metrics
	log      *zap.SugaredLogger
	interval time.Duration

	mu       sync.RWMutex
	snapshot Snapshot
}

// Snapshot is the typed result of one collection cycle, cached for the
// health endpoint.
type Snapshot struct {
	Adapters       []types.AdapterInfo
	Enclosures     []types.EnclosureInfo
	LogicalDrives  []types.LogicalDriveInfo
	PhysicalDrives []types.PhysicalDriveInfo
	Batteries      []types.BatteryInfo
	CollectedAt    time.Time
}

// New creates a new collector
func New(client *megacli.Client, m *metrics.Metrics, log *zap.SugaredLogger, interval time.Duration) *Collector {
	return &Collector{
		client:   client,
		metrics:  m,
		log:      log,
		interval: interval,
	}
}

// Start begins the collection loop and blocks until ctx is cancelled.
func (c *Collector) Start(ctx context.Context) {
	c.metrics.ExporterUp.Set(1)

	// Collect metrics immediately on startup
	c.Collect(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Collect(ctx)
		}
	}
}

// Collect runs one collection cycle: query the controller, update metrics
// and replace the cached snapshot.
func (c *Collector) Collect(ctx context.Context) {
	start := time.Now()
	c.log.Debug("collecting megaraid metrics")

	snap := Snapshot{CollectedAt: start}
	failed := false

	if records, err := c.client.Adapters(ctx); err != nil {
		c.log.Errorw("querying adapters", "error", err)
		failed = true
	} else {
		for _, r := range records {
			snap.Adapters = append(snap.Adapters, AdapterFromRecord(r))
		}
	}

	if records, err := c.client.Enclosures(ctx); err != nil {
		c.log.Errorw("querying enclosures", "error", err)
		failed = true
	} else {
		for _, r := range records {
			snap.Enclosures = append(snap.Enclosures, EnclosureFromRecord(r))
		}
	}

	if records, err := c.client.LogicalDrives(ctx); err != nil {
		c.log.Errorw("querying logical drives", "error", err)
		failed = true
	} else {
		for _, r := range records {
			snap.LogicalDrives = append(snap.LogicalDrives, LogicalDriveFromRecord(r))
		}
	}

	if records, err := c.client.PhysicalDrives(ctx); err != nil {
		c.log.Errorw("querying physical drives", "error", err)
		failed = true
	} else {
		for _, r := range records {
			snap.PhysicalDrives = append(snap.PhysicalDrives, PhysicalDriveFromRecord(r))
		}
	}

	if records, err := c.client.BatteryBackupUnits(ctx); err != nil {
		c.log.Errorw("querying battery backup units", "error", err)
		failed = true
	} else {
		for _, r := range records {
			snap.Batteries = append(snap.Batteries, BatteryFromRecord(r))
		}
	}

	if failed {
		c.metrics.CollectionErrors.Inc()
	}

	c.updateMetrics(snap)
	c.metrics.CollectionDuration.Set(time.Since(start).Seconds())

	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()

	c.log.Infow("collection cycle finished",
		"adapters", len(snap.Adapters),
		"logical_drives", len(snap.LogicalDrives),
		"physical_drives", len(snap.PhysicalDrives),
		"batteries", len(snap.Batteries),
		"duration", time.Since(start),
	)
}

// Snapshot returns the result of the most recent collection cycle.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

func (c *Collector) updateMetrics(snap Snapshot) {
	c.metrics.Reset()

	for _, a := range snap.Adapters {
		c.metrics.AdapterInfo.WithLabelValues(
			formatID(a.ID), a.ProductName, a.SerialNo, a.FirmwareVersion,
		).Set(1)
	}

	for _, ld := range snap.LogicalDrives {
		adapter := formatID(ld.AdapterID)
		drive := formatID(ld.ID)
		level := formatID(ld.RaidLevel)

		c.metrics.LDStatus.WithLabelValues(adapter, drive, level, ld.State).Set(float64(ld.StatusCode))
		if ld.SizeBytes > 0 {
			c.metrics.LDSizeBytes.WithLabelValues(adapter, drive, level).Set(ld.SizeBytes)
		}
	}

	for _, pd := range snap.PhysicalDrives {
		adapter := formatID(pd.AdapterID)
		enclosure := formatID(pd.EnclosureID)
		slot := formatID(pd.Slot)

		c.metrics.PDStatus.WithLabelValues(adapter, enclosure, slot, pd.Model, pd.FirmwareState).Set(float64(pd.StatusCode))
		if pd.Temperature > 0 {
			c.metrics.PDTemperature.WithLabelValues(adapter, enclosure, slot, pd.Model).Set(float64(pd.Temperature))
		}
		c.metrics.PDMediaErrors.WithLabelValues(adapter, enclosure, slot, pd.Model).Set(float64(pd.MediaErrors))
		c.metrics.PDPredictiveFails.WithLabelValues(adapter, enclosure, slot, pd.Model).Set(float64(pd.PredictiveFailures))
	}

	for _, bbu := range snap.Batteries {
		adapter := formatID(bbu.AdapterID)

		c.metrics.BBUStatus.WithLabelValues(adapter, bbu.BatteryType, bbu.State).Set(float64(bbu.StatusCode))
		if bbu.VoltageMV > 0 {
			c.metrics.BBUVoltage.WithLabelValues(adapter, bbu.BatteryType).Set(float64(bbu.VoltageMV))
		}
		if bbu.Temperature > 0 {
			c.metrics.BBUTemperature.WithLabelValues(adapter, bbu.BatteryType).Set(float64(bbu.Temperature))
		}
		if bbu.RelativeCharge > 0 {
			c.metrics.BBURelativeCharge.WithLabelValues(adapter, bbu.BatteryType).Set(float64(bbu.RelativeCharge))
		}
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
