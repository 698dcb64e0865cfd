package create_booking

import (
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"

	"github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
)

// proposedEnd возвращает конец предлагаемого интервала работы.
// Заказ без оценки длительности занимает ровно один слот.
func proposedEnd(start time.Time, totalWorkMinutes int) time.Time {
	if totalWorkMinutes <= 0 {
		return start.Add(domain.SlotStep)
	}
	return start.Add(time.Duration(totalWorkMinutes) * time.Minute)
}

// staffHasConflict проверяет, пересекается ли предлагаемый интервал
// [start, end) с какой-либо задачей сотрудника
func staffHasConflict(tasks []*domain.Task, staffID int64, start, end time.Time) bool {
	for _, t := range tasks {
		if t.StaffID != staffID {
			continue
		}
		if t.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// anyActiveStaffFree проверяет, свободен ли хотя бы один активный сотрудник
// на предлагаемый интервал [start, end)
func anyActiveStaffFree(staff []staffservice.Staff, tasks []*domain.Task, start, end time.Time) bool {
	for _, s := range staff {
		if !s.IsActive() {
			continue
		}
		if !staffHasConflict(tasks, s.ID, start, end) {
			return true
		}
	}
	return false
}
