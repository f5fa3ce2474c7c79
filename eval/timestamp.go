package eval

import (
	"strconv"
	"time"

	"github.com/grafana/regexp"
)

var timestampRE = regexp.MustCompile(`^` +
	`([0-9][0-9][0-9][0-9])` +
	`-([0-9][0-9]?)` +
	`-([0-9][0-9]?)` +
	`(?:(?:[Tt]|[ \t]+)` +
	`([0-9][0-9]?)` +
	`:([0-9][0-9])` +
	`:([0-9][0-9])` +
	`(?:\.([0-9]*))?` +
	`(?:[ \t]*(Z|([-+])([0-9][0-9]?)(?::([0-9][0-9]))?))?)?` +
	`$`)

const (
	tsYear = 1 + iota
	tsMonth
	tsDay
	tsHour
	tsMinute
	tsSecond
	tsFraction
	tsZone
	tsZoneSign
	tsZoneHour
	tsZoneMinute
)

// IsTimestamp reports whether s has the shape of a timestamp:
// YYYY-M-D, optionally followed by a time H:MM:SS with an optional
// fraction and zone.
func IsTimestamp(s string) bool {
	return timestampRE.MatchString(s)
}

// ParseTimestamp returns the Unix time of a timestamp. Without an explicit
// zone the fields are read in loc. A day past the end of its month rolls
// over into the next, so 2001-02-30 is March 2. ok is false if s is not a
// timestamp or a field is out of range.
func ParseTimestamp(s string, loc *time.Location) (int64, bool) {
	m := timestampRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	field := func(i int) int {
		if m[i] == "" {
			return 0
		}
		v, _ := strconv.Atoi(m[i])
		return v
	}
	year, month, day := field(tsYear), field(tsMonth), field(tsDay)
	hour, minute, second := field(tsHour), field(tsMinute), field(tsSecond)
	if month < 1 || month > 12 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return 0, false
	}
	if loc == nil {
		loc = time.Local
	}
	switch {
	case m[tsZone] == "Z":
		loc = time.UTC
	case m[tsZoneSign] != "":
		off := field(tsZoneHour)*3600 + field(tsZoneMinute)*60
		if m[tsZoneSign] == "-" {
			off = -off
		}
		loc = time.FixedZone("", off)
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc).Unix(), true
}
