package get_available_slots

import (
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
	"github.com/petspa/PetSpa-BookingService/pkg/types"
)

// buildSlots строит дневную сетку с признаком доступности каждого слота
// Прошедшие слоты сегодняшнего дня отбрасываются
func buildSlots(
	date time.Time,
	now time.Time,
	mode domain.AssignmentMode,
	staffID *int64,
	activeStaff []staffservice.Staff,
	tasks []*domain.Task,
) []Slot {
	result := make([]Slot, 0, domain.SlotsPerDay)

	for _, slot := range domain.DaySlots(date) {
		if !slot.After(now) {
			continue
		}

		available := false
		if mode == domain.ModeManual {
			available = !staffBlocked(tasks, *staffID, slot)
		} else {
			available = anyActiveStaffFreeAt(activeStaff, tasks, slot)
		}

		result = append(result, Slot{
			StartTime:       types.NewTimeString(slot),
			DurationMinutes: domain.SlotDurationMinutes,
			Available:       available,
		})
	}

	return result
}

// staffBlocked проверяет, занят ли сотрудник в указанный слот
func staffBlocked(tasks []*domain.Task, staffID int64, slot time.Time) bool {
	for _, t := range tasks {
		if t.StaffID != staffID {
			continue
		}
		if t.BlocksSlot(slot) {
			return true
		}
	}
	return false
}

// anyActiveStaffFreeAt проверяет, свободен ли хотя бы один активный сотрудник
// в указанный слот
func anyActiveStaffFreeAt(staff []staffservice.Staff, tasks []*domain.Task, slot time.Time) bool {
	for _, s := range staff {
		if !s.IsActive() {
			continue
		}
		if !staffBlocked(tasks, s.ID, slot) {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
