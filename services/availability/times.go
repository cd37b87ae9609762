// File: services/availability/times.go
package availability

import (
	"fmt"
	"math"
	"time"
)

// dateLayout is the canonical calendar-date form. Dates are kept as plain
// strings end to end so no timezone conversion can shift a slot's day.
const dateLayout = "2006-01-02"

const minutesPerDay = 24 * 60

// parseClock validates a zero-padded "HH:MM" string and returns minutes
// since midnight.
func parseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes returns start advanced by the given number of minutes as a
// zero-padded "HH:MM" string. Results that leave the calendar day are
// rejected rather than wrapped: a slot must end by 23:59.
func AddMinutes(start string, minutes int) (string, error) {
	base, err := parseClock(start)
	if err != nil {
		return "", err
	}
	total := base + minutes
	if total >= minutesPerDay {
		return "", fmt.Errorf("slot starting at %s with %d minutes would run past 23:59", start, minutes)
	}
	return formatClock(total), nil
}

// ParseDate validates a "2006-01-02" calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// InclusiveDayCount counts the days from 'from' through 'to', both ends
// included. Same-day ranges count as 1.
func InclusiveDayCount(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours()/24)) + 1
}

// SlotTimes is one expanded start/end pair within a daily window.
type SlotTimes struct {
	Start string
	End   string
}

// ExpandDailySlots tiles a daily window with back-to-back slots of the given
// duration. A trailing remainder shorter than one full slot is dropped, never
// emitted as a partial slot.
func ExpandDailySlots(windowStart, windowEnd string, duration int) ([]SlotTimes, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", duration)
	}
	start, err := parseClock(windowStart)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(windowEnd)
	if err != nil {
		return nil, err
	}
	if start >= end {
		return nil, fmt.Errorf("window start %s must be before window end %s", windowStart, windowEnd)
	}

	var slots []SlotTimes
	for cur := start; cur+duration <= end; cur += duration {
		slots = append(slots, SlotTimes{
			Start: formatClock(cur),
			End:   formatClock(cur + duration),
		})
	}
	return slots, nil
}
