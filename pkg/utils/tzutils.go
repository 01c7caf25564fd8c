package utils

import (
	"fmt"
	"time"
)

// ZoneOffsetMinutes returns t's raw UTC offset in whole minutes, truncating
// any seconds residue.
func ZoneOffsetMinutes(t time.Time) int {
	_, offset := t.Zone()
	return offset / 60
}

// IsWholeMinuteZone reports whether t's raw UTC offset is an exact number of
// minutes. Some historical zone definitions carry a seconds residue.
func IsWholeMinuteZone(t time.Time) bool {
	_, offset := t.Zone()
	return offset%60 == 0
}

// FixedZoneFromMinutes builds a fixed-offset location from a signed minute
// offset. Offset zero is UTC itself, not an anonymous zero-offset zone.
func FixedZoneFromMinutes(minutes int) *time.Location {
	if minutes == 0 {
		return time.UTC
	}
	sign := '+'
	m := minutes
	if m < 0 {
		sign = '-'
		m = -m
	}
	name := fmt.Sprintf("%c%02d%02d", sign, m/60, m%60)
	return time.FixedZone(name, minutes*60)
}

// ConvertToZoneMinutes re-expresses t in a fixed zone given by a signed
// minute offset.
func ConvertToZoneMinutes(t time.Time, minutes int) time.Time {
	return t.In(FixedZoneFromMinutes(minutes))
}
