package model

import (
	"regexp"
	"strconv"
	"time"

	"parish/shared/timezone"
)

// Schedule times arrive as free-form strings from independently built
// submission forms. H:MM and HH:MM are honored, optionally with seconds or a
// fraction; anything else falls back to midnight of the schedule date.
var timeOfDayRegex = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})(?::\d{2}(?:\.\d+)?)?\s*$`)

// DueInstant combines a schedule date with the free-form time string into the
// instant the service is due. ok is false when no date is set, in which case
// the booking cannot be judged past.
func DueInstant(date *time.Time, timeOfDay string) (due time.Time, ok bool) {
	if date == nil || date.IsZero() {
		return time.Time{}, false
	}

	hour, minute := 0, 0

	if match := timeOfDayRegex.FindStringSubmatch(timeOfDay); match != nil {
		h, _ := strconv.Atoi(match[1])
		m, _ := strconv.Atoi(match[2])

		if h < 24 && m < 60 {
			hour, minute = h, m
		}
	}

	// The date column is a calendar day: parsed in the app timezone on the
	// way in, but scanned back as UTC midnight by the driver. Only its
	// year/month/day are meaningful, so the due instant is rebuilt in the
	// app timezone rather than the scanned location.
	due = time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, timezone.GetLocation())

	return due, true
}

// IsPast reports whether the due instant is strictly before now, compared at
// minute granularity. An absent or unparseable date never blocks confirmation.
func IsPast(date *time.Time, timeOfDay string, now time.Time) bool {
	due, ok := DueInstant(date, timeOfDay)
	if !ok {
		return false
	}

	return due.Before(now.Truncate(time.Minute))
}
