package domain

import (
	"strings"
	"time"
)

// absoluteLayouts are accepted for zone-qualified timestamps.
// Fractional seconds in the input are accepted by all of them.
var absoluteLayouts = []string{
	time.RFC3339Nano,                // 2006-01-02T15:04:05+09:00 / ...Z
	"2006-01-02T15:04:05Z0700",      // offset without colon
	"2006-01-02 15:04:05Z07:00",     // space-separated variants
	"2006-01-02 15:04:05Z0700",
}

// civilLayouts are accepted for zone-naive timestamps, which are read as
// civil time under the deployment's fixed offset.
var civilLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseInstant converts a raw timestamp string into an absolute instant.
//
// Strings carrying an explicit zone indicator (Z suffix or ±HH:MM / ±HHMM
// offset) parse as absolute instants directly. Zone-naive strings of the
// form YYYY-MM-DD[ T]HH:mm:ss[.fff] are interpreted as local civil time
// under the given fixed offset. Anything else yields ok=false; callers
// must treat the value as absent, never as an error.
//
// The function is pure and independent of the host machine's timezone.
func ParseInstant(raw string, offset time.Duration) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if hasZoneIndicator(s) {
		for _, layout := range absoluteLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}

	loc := time.FixedZone("", int(offset/time.Second))
	for _, layout := range civilLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// hasZoneIndicator reports whether s ends in an explicit zone marker.
// Only characters past the date part (YYYY-MM-DD) are inspected, since the
// date itself contains '-'.
func hasZoneIndicator(s string) bool {
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		return true
	}
	if len(s) <= 10 {
		return false
	}
	rest := s[10:]
	if strings.ContainsRune(rest, '+') {
		return true
	}
	// A '-' inside the time-of-day part can only be an offset sign.
	return strings.LastIndexByte(rest, '-') > 0
}
