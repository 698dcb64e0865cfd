package domain

import "time"

// DaySlots returns the full bookable grid for a calendar date: half-hour
// instants from opening (09:00) up to but excluding closing (21:00), in the
// date's location. The grid is produced in full even for today; filtering
// past slots is the availability checker's concern.
func DaySlots(date time.Time) []time.Time {
	slots := make([]time.Time, 0, SlotsPerDay)

	slot := time.Date(date.Year(), date.Month(), date.Day(), OpeningHour, 0, 0, 0, date.Location())
	for i := 0; i < SlotsPerDay; i++ {
		slots = append(slots, slot)
		slot = slot.Add(SlotStep)
	}

	return slots
}

// IsSlotAligned reports whether t lies exactly on the daily grid:
// within opening hours and on a half-hour boundary
func IsSlotAligned(t time.Time) bool {
	if t.Hour() < OpeningHour || t.Hour() >= ClosingHour {
		return false
	}
	if t.Minute()%SlotDurationMinutes != 0 {
		return false
	}
	return t.Second() == 0 && t.Nanosecond() == 0
}
