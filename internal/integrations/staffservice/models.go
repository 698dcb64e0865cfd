package staffservice

// StaffStatus статус сотрудника в справочнике персонала
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Staff модель сотрудника из справочника персонала
type Staff struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Status   string `json:"status"`
}

// IsActive возвращает true для активного сотрудника
// Неактивные сотрудники исключаются и из ручного выбора, и из автоподбора
func (s *Staff) IsActive() bool {
	return s.Status == StatusActive
}

// StaffListResponse модель ответа со списком сотрудников
type StaffListResponse struct {
	Items []Staff `json:"items"`
}
