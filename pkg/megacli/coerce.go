package megacli

import (
	"regexp"
	"strconv"
	"strings"
)

// keyReplacer normalizes raw property names into record keys.
var keyReplacer = strings.NewReplacer(
	" ", "_",
	"'s", "",
	".", "",
	"/", "_",
	"&", "and",
)

var (
	intPattern      = regexp.MustCompile(`^(\d+)\s*%?$`)
	floatPattern    = regexp.MustCompile(`^(\d+\.\d+)\s*%?$`)
	tempPattern     = regexp.MustCompile(`^(\d+)\s*(?:c|degree celcius)`)
	sizePattern     = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(b|kb|mb|gb|tb|pb)`)
	durationPattern = regexp.MustCompile(`^(\d+)\s*(s|sec|secs|seconds|m|min|mins|minutes|h|hour|hours|d|day|days)$`)
)

var sizeMultipliers = map[string]float64{
	"b":  1,
	"kb": 1 << 10,
	"mb": 1 << 20,
	"gb": 1 << 30,
	"tb": 1 << 40,
	"pb": 1 << 50,
}

// raidLevels maps MegaCli RAID level phrases to numeric RAID levels.
var raidLevels = map[string]int64{
	"primary-0, secondary-0, raid level qualifier-0": 0,
	"primary-1, secondary-0, raid level qualifier-0": 1,
	"primary-5, secondary-0, raid level qualifier-3": 5,
	"primary-6, secondary-0, raid level qualifier-3": 6,
	"primary-1, secondary-3, raid level qualifier-0": 10,
}

func normalizeKey(key string) string {
	return keyReplacer.Replace(key)
}

// coerce decodes a raw key/value pair into a normalized key and a typed
// value. Rules are tried in order; the first match wins. Unmatched values
// stay strings.
func coerce(key, value string) (string, any) {
	k := normalizeKey(key)

	switch value {
	case "n/a", "none":
		return k, nil
	case "yes":
		return k, true
	case "no":
		return k, false
	}

	if m := intPattern.FindStringSubmatch(value); m != nil {
		n, _ := strconv.ParseInt(m[1], 10, 64)
		return k, n
	}

	if m := floatPattern.FindStringSubmatch(value); m != nil {
		f, _ := strconv.ParseFloat(m[1], 64)
		return k, f
	}

	// Temperatures come with trailing unit text ("33c (91.40 f)").
	if strings.Contains(key, "temperature") {
		if m := tempPattern.FindStringSubmatch(value); m != nil {
			n, _ := strconv.ParseInt(m[1], 10, 64)
			return k, n
		}
	}

	// Sizes use binary multiples ("278.464 gb [0x22cee2d6 sectors]").
	if m := sizePattern.FindStringSubmatch(value); m != nil {
		f, _ := strconv.ParseFloat(m[1], 64)
		return k, f * sizeMultipliers[m[2]]
	}

	if m := durationPattern.FindStringSubmatch(value); m != nil {
		n, _ := strconv.ParseInt(m[1], 10, 64)
		return k, n * durationSeconds(m[2])
	}

	return k, strings.TrimSpace(value)
}

func durationSeconds(unit string) int64 {
	switch unit[0] {
	case 'm':
		return 60
	case 'h':
		return 60 * 60
	case 'd':
		return 60 * 60 * 24
	default:
		return 1
	}
}
