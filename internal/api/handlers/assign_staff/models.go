package assign_staff

// AssignStaffRequest HTTP request model
type AssignStaffRequest struct {
	StaffID int64 `json:"staffId"`
}
