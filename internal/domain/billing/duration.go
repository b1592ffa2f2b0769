package billing

import (
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	minutesPerDay = 24 * 60
)

// parseClock reads a time of day from "HH:MM", "HH:MM:SS" or an RFC3339 timestamp.
// Anything else reads as midnight.
func parseClock(s string) (hour, minute int) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Hour(), t.Minute()
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return 0, 0
		}
	}
	return h, m
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(dateLayout) {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, s[:len(dateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// IntervalMinutes returns the length of one operating interval.
// Without a date only the time of day is used and an end before the start wraps past midnight.
// With a date the end is pushed to the next day when it precedes the start.
func IntervalMinutes(ot OperatingTime) int {
	sh, sm := parseClock(ot.StartTime)
	eh, em := parseClock(ot.EndTime)

	day, ok := parseDate(ot.Date)
	if !ok {
		diff := (eh*60 + em) - (sh*60 + sm)
		if diff < 0 {
			diff += minutesPerDay
		}
		return diff
	}

	start := day.Add(time.Duration(sh)*time.Hour + time.Duration(sm)*time.Minute)
	end := day.Add(time.Duration(eh)*time.Hour + time.Duration(em)*time.Minute)
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	return int(end.Sub(start) / time.Minute)
}

func operatingKey(ot OperatingTime) string {
	return strings.Join([]string{
		strings.TrimSpace(ot.Date),
		strings.TrimSpace(ot.StartTime),
		strings.TrimSpace(ot.EndTime),
		strings.TrimSpace(ot.OperatorName),
	}, "|")
}

func downTimeKey(dt DownTime) string {
	return strings.Join([]string{
		strings.TrimSpace(dt.Date),
		strings.TrimSpace(dt.TypeOfProduct),
		strconv.Itoa(dt.Minutes),
		strings.TrimSpace(dt.Cause),
		strings.TrimSpace(dt.OperatorName),
	}, "|")
}

func DedupeOperatingTimes(times []OperatingTime) []OperatingTime {
	seen := make(map[string]struct{}, len(times))
	out := make([]OperatingTime, 0, len(times))
	for _, ot := range times {
		k := operatingKey(ot)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, ot)
	}
	return out
}

func DedupeDownTimes(times []DownTime) []DownTime {
	seen := make(map[string]struct{}, len(times))
	out := make([]DownTime, 0, len(times))
	for _, dt := range times {
		k := downTimeKey(dt)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, dt)
	}
	return out
}

// OperatingMinutes sums the deduplicated operating intervals of one utilization record.
func OperatingMinutes(u MachineUtilization) int {
	total := 0
	for _, ot := range DedupeOperatingTimes(u.OperatingTimes) {
		total += IntervalMinutes(ot)
	}
	return total
}

func DownTimeMinutes(u MachineUtilization) int {
	total := 0
	for _, dt := range DedupeDownTimes(u.DownTimes) {
		if dt.Minutes > 0 {
			total += dt.Minutes
		}
	}
	return total
}
