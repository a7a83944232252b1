package postgres

import (
	"context"
	"database/sql"

	"github.com/EdiBulb/CarRentalService/internal/domain"
	"github.com/EdiBulb/CarRentalService/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (car_id, user_id, start_date, end_date, total_fee_cents, status)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING rental_id`
	return r.db.QueryRowContext(ctx, query, rt.CarID, rt.UserID, rt.StartDate, rt.EndDate, rt.TotalFeeCents, rt.Status).Scan(&rt.ID)
}

func (r *rentalRepository) List(ctx context.Context, includeReturned bool) ([]domain.Rental, error) {
	query := `SELECT rental_id, car_id, user_id, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), total_fee_cents, status
	          FROM rentals`
	if !includeReturned {
		query += ` WHERE status <> 'returned'`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.CarID, &rt.UserID, &rt.StartDate, &rt.EndDate, &rt.TotalFeeCents, &rt.Status); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) Approve(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rentals SET status = 'active' WHERE rental_id = $1 AND status = 'on process'`, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *rentalRepository) SetStatus(ctx context.Context, id int32, status domain.RentalStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rentals SET status = $1 WHERE rental_id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}
