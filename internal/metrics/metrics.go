package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	AdapterInfo        *prometheus.GaugeVec
	LDStatus           *prometheus.GaugeVec
	LDSizeBytes        *prometheus.GaugeVec
	PDStatus           *prometheus.GaugeVec
	PDTemperature      *prometheus.GaugeVec
	PDMediaErrors      *prometheus.GaugeVec
	PDPredictiveFails  *prometheus.GaugeVec
	BBUStatus          *prometheus.GaugeVec
	BBUVoltage         *prometheus.GaugeVec
	BBUTemperature     *prometheus.GaugeVec
	BBURelativeCharge  *prometheus.GaugeVec
	ExporterUp         prometheus.Gauge
	CollectionErrors   prometheus.Counter
	CollectionDuration prometheus.Gauge
}

// New creates and registers all metrics
func New() *Metrics {
	m := &Metrics{
		AdapterInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "megaraid_adapter_info",
				Help: "MegaRAID adapter presence, labeled with identity details (always 1)",
			},
			[]string{"adapter", "product_name", "serial", "firmware"},
		),
		LDStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "megaraid_ld_status",
				Help: "Logical drive status (0=unknown, 1=optimal, 2=degraded, 3=failed)",
			},
			[]string{"adapter", "drive", "raid_level", "state"},
		),
		LDSizeBytes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "megaraid_ld_size_bytes",
				Help: "Logical drive size in bytes",
			},
			[]string{"adapter", "drive", "raid_level"},
		),
		PDStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "megaraid_pd_status",
				Help: "Physical drive status (0=unknown, 1=ok, 2=rebuilding, 3=failed)",
			},
			[]string{"adapter", "enclosure", "slot", "model", "firmware_state"},
		),
		PDTemperature: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "megaraid_pd_temperature_celsius",
				Help: "Physical drive temperature in Celsius",
			},
			[]string{"adapter", "enclosure", "slot", "model"},
		),
		PDMediaErrors: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "megaraid_pd_media_errors_total",
				Help: "Physical drive media error count",
			},
			[]string{"adapter", "enclosure", "slot", "model"},
		),
		PDPredictiveFails: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "megaraid_pd_predictive_failures_total",
				Help: "Physical drive predictive failure count",
			},
			[]string{"adapter", "enclosure", "slot", "model"},
		),
		BBUStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "megaraid_bbu_status",
				Help: "Battery backup unit status (0=unknown, 1=ok, 2=warning, 3=failed)",
			},
			[]string{"adapter", "battery_type", "state"},
		),
		BBUVoltage: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "megaraid_bbu_voltage_millivolts",
				Help: "Battery backup unit voltage in millivolts",
			},
			[]string{"adapter", "battery_type"},
		),
		BBUTemperature: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "megaraid_bbu_temperature_celsius",
				Help: "Battery backup unit temperature in Celsius",
			},
			[]string{"adapter", "battery_type"},
		),
		BBURelativeCharge: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "megaraid_bbu_relative_charge_percent",
				Help: "Battery backup unit relative state of charge",
			},
			[]string{"adapter", "battery_type"},
		),
		ExporterUp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "megaraid_exporter_up",
				Help: "Whether the MegaRAID exporter is up and running",
			},
		),
		CollectionErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "megaraid_collection_errors_total",
				Help: "Total number of failed MegaCli collection attempts",
			},
		),
		CollectionDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "megaraid_collection_duration_seconds",
				Help: "Duration of the last collection cycle in seconds",
			},
		),
	}

	// Register all metrics
	prometheus.MustRegister(
		m.AdapterInfo,
		m.LDStatus,
		m.LDSizeBytes,
		m.PDStatus,
		m.PDTemperature,
		m.PDMediaErrors,
		m.PDPredictiveFails,
		m.BBUStatus,
		m.BBUVoltage,
		m.BBUTemperature,
		m.BBURelativeCharge,
		m.ExporterUp,
		m.CollectionErrors,
		m.CollectionDuration,
	)

	return m
}

// Reset clears all per-entity metrics before a new collection cycle
func (m *Metrics) Reset() {
	m.AdapterInfo.Reset()
	m.LDStatus.Reset()
	m.LDSizeBytes.Reset()
	m.PDStatus.Reset()
	m.PDTemperature.Reset()
	m.PDMediaErrors.Reset()
	m.PDPredictiveFails.Reset()
	m.BBUStatus.Reset()
	m.BBUVoltage.Reset()
	m.BBUTemperature.Reset()
	m.BBURelativeCharge.Reset()
}
