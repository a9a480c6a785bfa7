package health

import (
	"time"

	"megaraid-exporter/internal/collector"
	"megaraid-exporter/pkg/types"
)

const serviceName = "megaraid-exporter"

// Service provides health data collection functionality
type Service struct {
	collector   *collector.Collector
	version     string
	toolVersion string
}

// New creates a new health service
func New(c *collector.Collector, version, toolVersion string) *Service {
	return &Service{
		collector:   c,
		version:     version,
		toolVersion: toolVersion,
	}
}

// GetHealthData builds the JSON health payload from the collector's most
// recent snapshot.
func (s *Service) GetHealthData() *types.HealthResponse {
	snap := s.collector.Snapshot()

	summary := types.Summary{
		Adapters:       len(snap.Adapters),
		Enclosures:     len(snap.Enclosures),
		LogicalDrives:  len(snap.LogicalDrives),
		PhysicalDrives: len(snap.PhysicalDrives),
		Batteries:      len(snap.Batteries),
	}

	for _, ld := range snap.LogicalDrives {
		switch ld.StatusCode {
		case types.StatusOK:
			summary.OptimalLogicalDrives++
		case types.StatusDegraded:
			summary.DegradedLogicalDrives++
		case types.StatusFailed:
			summary.FailedLogicalDrives++
		}
	}

	for _, pd := range snap.PhysicalDrives {
		switch pd.StatusCode {
		case types.StatusOK:
			summary.HealthyPhysicalDrives++
		case types.StatusFailed:
			summary.FailedPhysicalDrives++
		}
	}

	for _, bbu := range snap.Batteries {
		if bbu.StatusCode == types.StatusOK {
			summary.HealthyBatteries++
		}
	}

	return &types.HealthResponse{
		Status:         overallStatus(summary),
		Service:        serviceName,
		Version:        s.version,
		Timestamp:      time.Now().Format(time.RFC3339),
		ToolVersion:    s.toolVersion,
		Summary:        summary,
		Adapters:       snap.Adapters,
		Enclosures:     snap.Enclosures,
		LogicalDrives:  snap.LogicalDrives,
		PhysicalDrives: snap.PhysicalDrives,
		Batteries:      snap.Batteries,
	}
}

func overallStatus(s types.Summary) string {
	switch {
	case s.FailedLogicalDrives > 0 || s.FailedPhysicalDrives > 0:
		return "critical"
	case s.DegradedLogicalDrives > 0:
		return "degraded"
	default:
		return "ok"
	}
}
