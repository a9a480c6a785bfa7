package utils

import (
	"strconv"
	"strings"

	"megaraid-exporter/pkg/types"
)

// LogicalDriveStatus converts a virtual drive state string to a status value
func LogicalDriveStatus(state string) types.Status {
	state = strings.ToLower(strings.TrimSpace(state))

	switch {
	case strings.Contains(state, "optimal"):
		return types.StatusOK
	case strings.Contains(state, "degraded"):
		return types.StatusDegraded
	case strings.Contains(state, "failed") || strings.Contains(state, "offline"):
		return types.StatusFailed
	default:
		return types.StatusUnknown
	}
}

// PhysicalDriveStatus converts a firmware state string to a status value
func PhysicalDriveStatus(state string) types.Status {
	state = strings.ToLower(strings.TrimSpace(state))

	switch {
	case strings.Contains(state, "online") || strings.Contains(state, "hotspare") ||
		strings.Contains(state, "jbod") || strings.Contains(state, "unconfigured(good)"):
		return types.StatusOK
	case strings.Contains(state, "rebuild") || strings.Contains(state, "copyback"):
		return types.StatusDegraded
	case strings.Contains(state, "failed") || strings.Contains(state, "offline") ||
		strings.Contains(state, "unconfigured(bad)"):
		return types.StatusFailed
	default:
		return types.StatusUnknown
	}
}

// BatteryStatus converts a battery state string to a status value
func BatteryStatus(state string) types.Status {
	switch strings.ToLower(strings.TrimSpace(state)) {
	case "optimal", "operational", "charging":
		return types.StatusOK
	case "discharging", "learning", "warning", "low":
		return types.StatusDegraded
	case "critical", "failed", "missing":
		return types.StatusFailed
	default:
		return types.StatusUnknown
	}
}

// LeadingInt extracts the leading integer from strings like "3863 mv" or
// "65 %". Returns 0 when the string does not start with digits.
func LeadingInt(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}
