package domain

type RentalStatus string

const (
	RentalStatusOnProcess RentalStatus = "on process"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCancelled RentalStatus = "cancelled"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusReturned  RentalStatus = "returned"
)

// DailyRateCents is the flat rental rate, $50 per day.
const DailyRateCents int32 = 5000

type Rental struct {
	ID            int32        `json:"id"`
	CarID         int32        `json:"car_id"`
	UserID        int32        `json:"user_id"`
	StartDate     string       `json:"start_date"` // yyyy-mm-dd
	EndDate       string       `json:"end_date"`   // yyyy-mm-dd, inclusive
	TotalFeeCents int32        `json:"total_fee_cents"`
	Status        RentalStatus `json:"status"`
}
