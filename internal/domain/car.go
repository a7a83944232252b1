package domain

type Car struct {
	ID            int32  `json:"id"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	Year          int32  `json:"year"`
	Mileage       int32  `json:"mileage"`
	AvailableNow  bool   `json:"available_now"`
	MinRentPeriod int32  `json:"min_rent_period"` // days
	MaxRentPeriod int32  `json:"max_rent_period"` // days
}
