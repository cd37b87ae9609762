// File: services/availability/times_test.go
package availability

import (
	"testing"
	"time"
)

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		start   string
		minutes int
		want    string
		wantErr bool
	}{
		{"09:00", 60, "10:00", false},
		{"09:00", 90, "10:30", false},
		{"08:05", 10, "08:15", false},
		{"09:45", 20, "10:05", false}, // zero-padded minutes
		{"23:00", 59, "23:59", false},
		{"23:30", 45, "", true}, // runs past end of day
		{"23:00", 60, "", true}, // midnight itself is out
		{"9:00", 60, "", true},  // missing zero padding
		{"09:60", 5, "", true},
		{"24:00", 5, "", true},
		{"0900", 5, "", true},
	}
	for _, tc := range cases {
		got, err := AddMinutes(tc.start, tc.minutes)
		if tc.wantErr {
			if err == nil {
				t.Errorf("AddMinutes(%q, %d): expected error, got %q", tc.start, tc.minutes, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("AddMinutes(%q, %d): unexpected error: %v", tc.start, tc.minutes, err)
			continue
		}
		if got != tc.want {
			t.Errorf("AddMinutes(%q, %d) = %q, want %q", tc.start, tc.minutes, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-03-02"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	for _, bad := range []string{"2026-3-2", "02-03-2026", "2026-03-02T00:00:00Z", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestInclusiveDayCount(t *testing.T) {
	day := func(s string) time.Time {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("bad test date %q: %v", s, err)
		}
		return d
	}
	cases := []struct {
		from, to string
		want     int
	}{
		{"2026-03-02", "2026-03-02", 1},
		{"2026-03-02", "2026-03-08", 7},
		{"2026-03-02", "2026-03-15", 14},
		{"2026-02-27", "2026-03-05", 7}, // leap-adjacent month boundary
	}
	for _, tc := range cases {
		if got := InclusiveDayCount(day(tc.from), day(tc.to)); got != tc.want {
			t.Errorf("InclusiveDayCount(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestExpandDailySlots(t *testing.T) {
	slots, err := ExpandDailySlots("18:00", "20:00", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []SlotTimes{{"18:00", "19:00"}, {"19:00", "20:00"}}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(slots), len(want))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d = %+v, want %+v", i, slots[i], want[i])
		}
	}
}

func TestExpandDailySlotsDropsPartialTrailingSlot(t *testing.T) {
	slots, err := ExpandDailySlots("09:00", "10:30", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1 (no partial slot at 10:00-10:30)", len(slots))
	}
	if slots[0].Start != "09:00" || slots[0].End != "10:00" {
		t.Errorf("got %+v, want 09:00-10:00", slots[0])
	}
}

func TestExpandDailySlotsEmptyWhenWindowTooSmall(t *testing.T) {
	slots, err := ExpandDailySlots("10:00", "11:00", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("got %d slots, want 0", len(slots))
	}
}

func TestExpandDailySlotsRejectsInvertedWindow(t *testing.T) {
	if _, err := ExpandDailySlots("20:00", "18:00", 60); err == nil {
		t.Fatal("expected error for inverted window")
	}
	if _, err := ExpandDailySlots("18:00", "18:00", 60); err == nil {
		t.Fatal("expected error for empty window")
	}
	if _, err := ExpandDailySlots("18:00", "20:00", 0); err == nil {
		t.Fatal("expected error for zero duration")
	}
}
