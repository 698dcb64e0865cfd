package petcatalog

// Pet модель питомца из каталога
type Pet struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	TypeName string `json:"type_name"`
	OwnerID  int64  `json:"owner_id"`
}

// Product модель услуги из каталога
// TimeWorkMinutes - оценка длительности работы, из неё считается
// estimated_completion задачи сотрудника
type Product struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	SellingPrice    float64 `json:"selling_price"`
	TimeWorkMinutes int     `json:"time_work_minutes"`
}
