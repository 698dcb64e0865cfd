package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySlots(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	slots := DaySlots(date)

	require.Len(t, slots, 24)
	assert.Equal(t, time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC), slots[0])
	assert.Equal(t, time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC), slots[1])
	assert.Equal(t, time.Date(2025, 10, 15, 20, 30, 0, 0, time.UTC), slots[len(slots)-1])
}

func TestDaySlots_KeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	date := time.Date(2025, 10, 15, 13, 45, 0, 0, loc)

	slots := DaySlots(date)

	require.Len(t, slots, 24)
	assert.Equal(t, loc, slots[0].Location())
	assert.Equal(t, 9, slots[0].Hour())
}

func TestIsSlotAligned(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"opening slot", day.Add(9 * time.Hour), true},
		{"half hour slot", day.Add(9*time.Hour + 30*time.Minute), true},
		{"last slot", day.Add(20*time.Hour + 30*time.Minute), true},
		{"before opening", day.Add(8*time.Hour + 30*time.Minute), false},
		{"at closing", day.Add(21 * time.Hour), false},
		{"after closing", day.Add(22 * time.Hour), false},
		{"off grid minutes", day.Add(9*time.Hour + 15*time.Minute), false},
		{"non zero seconds", day.Add(9*time.Hour + 30*time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSlotAligned(tt.t))
		})
	}
}
