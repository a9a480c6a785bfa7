package megacli

import (
	"regexp"
	"strconv"
	"strings"
)

// blockSpec describes how one report kind nests its records. The adapter
// header either opens the record itself (adapters, BBUs) or only scopes the
// child headers that do (enclosures, logical and physical drives).
type blockSpec struct {
	adapterHeader *regexp.Regexp // captures the adapter number
	adapterKey    string         // key the adapter header capture is stored under
	adapterOpens  bool           // adapter header opens the record itself
	childHeader   *regexp.Regexp // captures the child identifier, nil when adapterOpens
	childKey      string         // key the child header capture is stored under
	raidLevel     bool           // map raid_level phrases to numeric levels
}

var (
	adapterSpec = blockSpec{
		adapterHeader: regexp.MustCompile(`^adapter #(\d+)`),
		adapterKey:    "id",
		adapterOpens:  true,
	}
	enclosureSpec = blockSpec{
		adapterHeader: regexp.MustCompile(`^number of enclosures on adapter (\d+) --`),
		adapterKey:    "adapter_id",
		childHeader:   regexp.MustCompile(`^enclosure (\d+)`),
		childKey:      "id",
	}
	logicalDriveSpec = blockSpec{
		adapterHeader: regexp.MustCompile(`^adapter (\d+) -- virtual drive information$`),
		adapterKey:    "adapter_id",
		childHeader:   regexp.MustCompile(`^virtual drive:(\d+)`),
		childKey:      "id",
		raidLevel:     true,
	}
	physicalDriveSpec = blockSpec{
		adapterHeader: regexp.MustCompile(`^adapter #(\d+)`),
		adapterKey:    "adapter_id",
		childHeader:   regexp.MustCompile(`^enclosure device id:(\d+)`),
		childKey:      "enclosure_id",
	}
	bbuSpec = blockSpec{
		adapterHeader: regexp.MustCompile(`^bbu status for adapter:(\d+)`),
		adapterKey:    "adapter_id",
		adapterOpens:  true,
	}
)

// parseBlocks segments normalized output lines into records. Lines before
// the first recognized header are discarded. A header always closes and
// emits the open record, regardless of nesting level; end of input emits
// whatever is still open.
func parseBlocks(lines []string, spec blockSpec) []Record {
	var records []Record
	var current Record
	adapterID := int64(-1)

	for _, line := range lines {
		if m := spec.adapterHeader.FindStringSubmatch(line); m != nil {
			if current != nil {
				records = append(records, current)
				current = nil
			}
			adapterID, _ = strconv.ParseInt(m[1], 10, 64)
			if spec.adapterOpens {
				current = Record{spec.adapterKey: adapterID}
			}
			continue
		}
		if adapterID < 0 {
			continue
		}

		if spec.childHeader != nil {
			if m := spec.childHeader.FindStringSubmatch(line); m != nil {
				if current != nil {
					records = append(records, current)
				}
				childID, _ := strconv.ParseInt(m[1], 10, 64)
				current = Record{spec.adapterKey: adapterID, spec.childKey: childID}
				continue
			}
		}

		if current == nil {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		k, v := coerce(key, value)
		if k == "exit_code" {
			continue
		}
		if spec.raidLevel && k == "raid_level" {
			if phrase, isString := v.(string); isString {
				if level, known := raidLevels[phrase]; known {
					v = level
				}
			}
		}
		current[k] = v
	}

	if current != nil {
		records = append(records, current)
	}
	return records
}
