package billing

import (
	"regexp"
	"strconv"
	"strings"
)

const notSpecified = "not specified"

var (
	minsHrsPattern   = regexp.MustCompile(`(?i)(\d+)\s*mins?\s*\(\s*[\d.]+\s*hrs?\s*\)`)
	operationPattern = regexp.MustCompile(`(?i)operation:\s*(\d+)\s*mins?`)
)

// matchRule picks one record for a line among the unused candidates, or returns -1.
type matchRule func(line ServiceLine, records []MachineUtilization, pool []int) int

// matchRules are tried in order and the first hit wins. The order decides tie-breaks.
var matchRules = []matchRule{
	matchByLineID,
	matchByEquipmentAndService,
	matchByEquipment,
	matchByOverlap,
}

// matcher assigns utilization records to service lines within a single recompute pass.
// A record is consumed by at most one line.
type matcher struct {
	records []MachineUtilization
	used    []bool
}

func newMatcher(records []MachineUtilization) *matcher {
	return &matcher{
		records: records,
		used:    make([]bool, len(records)),
	}
}

func (m *matcher) pool() []int {
	pool := make([]int, 0, len(m.records))
	for i := range m.records {
		if !m.used[i] {
			pool = append(pool, i)
		}
	}
	return pool
}

// match returns the index of the record claimed by line, or -1 when nothing matched.
func (m *matcher) match(line ServiceLine) int {
	pool := m.pool()
	if len(pool) == 0 {
		return -1
	}
	for _, rule := range matchRules {
		if idx := rule(line, m.records, pool); idx >= 0 {
			m.used[idx] = true
			return idx
		}
	}
	return -1
}

func matchByLineID(line ServiceLine, records []MachineUtilization, pool []int) int {
	id := strings.TrimSpace(line.ID)
	if id == "" {
		return -1
	}
	for _, i := range pool {
		if strings.Contains(records[i].MachineName, id) || strings.Contains(records[i].ServiceName, id) {
			return i
		}
	}
	return -1
}

func matchByEquipmentAndService(line ServiceLine, records []MachineUtilization, pool []int) int {
	for _, i := range pool {
		if equipmentEquals(line, records[i].MachineName) && nonEmptyEqual(records[i].ServiceName, line.ServiceName) {
			return i
		}
	}
	return -1
}

func matchByEquipment(line ServiceLine, records []MachineUtilization, pool []int) int {
	first := -1
	for _, i := range pool {
		if !equipmentEquals(line, records[i].MachineName) {
			continue
		}
		if serviceFold(records[i].ServiceName, line.ServiceName) {
			return i
		}
		if first < 0 {
			first = i
		}
	}
	return first
}

func matchByOverlap(line ServiceLine, records []MachineUtilization, pool []int) int {
	equipment := strings.ToLower(strings.TrimSpace(line.EquipmentName))
	if equipment == notSpecified {
		equipment = ""
	}
	service := strings.ToLower(strings.TrimSpace(line.ServiceName))

	partial := -1
	for _, i := range pool {
		machineHit := overlaps(strings.ToLower(records[i].MachineName), equipment)
		serviceHit := overlaps(strings.ToLower(records[i].ServiceName), service)
		if machineHit && serviceHit {
			return i
		}
		if partial < 0 && (machineHit || serviceHit) {
			partial = i
		}
	}
	return partial
}

// equipmentEquals compares a machine name against the line's equipment text,
// which may hold a comma-joined machine list.
func equipmentEquals(line ServiceLine, machine string) bool {
	machine = strings.TrimSpace(machine)
	equipment := strings.TrimSpace(line.EquipmentName)
	if machine == "" || equipment == "" || strings.EqualFold(equipment, notSpecified) {
		return false
	}
	if machine == equipment {
		return true
	}
	for _, part := range strings.Split(equipment, ",") {
		if strings.TrimSpace(part) == machine {
			return true
		}
	}
	return false
}

func nonEmptyEqual(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	return a != "" && a == b
}

func serviceFold(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	return a != "" && strings.EqualFold(a, b)
}

func overlaps(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MinutesFromDisplayText recovers minutes from labels such as "90 mins (1.5 hrs)" or "Operation: 90 mins".
func MinutesFromDisplayText(texts ...string) (int, bool) {
	for _, text := range texts {
		for _, re := range []*regexp.Regexp{minsHrsPattern, operationPattern} {
			if m := re.FindStringSubmatch(text); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					return n, true
				}
			}
		}
	}
	return 0, false
}
