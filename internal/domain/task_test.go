package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func taskAt(start time.Time, completion *time.Time) *Task {
	return &Task{
		ID:                  1,
		StaffID:             10,
		BookingID:           100,
		ExecutionDate:       start,
		EstimatedCompletion: completion,
	}
}

func TestTask_End(t *testing.T) {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	t.Run("without completion occupies one slot", func(t *testing.T) {
		task := taskAt(start, nil)
		assert.Equal(t, start.Add(SlotStep), task.End())
	})

	t.Run("with completion", func(t *testing.T) {
		completion := start.Add(90 * time.Minute)
		task := taskAt(start, &completion)
		assert.Equal(t, completion, task.End())
	})
}

func TestTask_BlocksSlot(t *testing.T) {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	completion := start.Add(90 * time.Minute) // 10:00 - 11:30

	task := taskAt(start, &completion)

	assert.True(t, task.BlocksSlot(start), "start slot")
	assert.True(t, task.BlocksSlot(start.Add(30*time.Minute)), "slot inside interval")
	assert.True(t, task.BlocksSlot(start.Add(60*time.Minute)), "last slot inside interval")
	assert.False(t, task.BlocksSlot(completion), "slot at completion boundary is free")
	assert.False(t, task.BlocksSlot(start.Add(-30*time.Minute)), "slot before start is free")
}

func TestTask_BlocksSlot_WithoutCompletion(t *testing.T) {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	task := taskAt(start, nil)

	assert.True(t, task.BlocksSlot(start))
	assert.False(t, task.BlocksSlot(start.Add(30*time.Minute)), "only the start slot is blocked")
}

func TestTask_Overlaps(t *testing.T) {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	completion := start.Add(60 * time.Minute) // 10:00 - 11:00
	task := taskAt(start, &completion)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", start, completion, true},
		{"crosses start", start.Add(-30 * time.Minute), start.Add(30 * time.Minute), true},
		{"crosses end", start.Add(30 * time.Minute), completion.Add(30 * time.Minute), true},
		{"contained", start.Add(15 * time.Minute), start.Add(45 * time.Minute), true},
		{"touching before", start.Add(-60 * time.Minute), start, false},
		{"touching after", completion, completion.Add(30 * time.Minute), false},
		{"disjoint", completion.Add(time.Hour), completion.Add(2 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, task.Overlaps(tt.start, tt.end))
		})
	}
}
