package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/EdiBulb/CarRentalService/internal/domain"
	"github.com/EdiBulb/CarRentalService/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (make, model, year, mileage, available_now, min_rent_period, max_rent_period)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING car_id`
	return r.db.QueryRowContext(ctx, query, c.Make, c.Model, c.Year, c.Mileage, c.AvailableNow, c.MinRentPeriod, c.MaxRentPeriod).Scan(&c.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT car_id, make, model, year, mileage, available_now, min_rent_period, max_rent_period FROM cars WHERE car_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Mileage, &c.AvailableNow, &c.MinRentPeriod, &c.MaxRentPeriod)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET make=$1, model=$2, year=$3, mileage=$4, available_now=$5, min_rent_period=$6, max_rent_period=$7 WHERE car_id=$8`
	res, err := r.db.ExecContext(ctx, query, c.Make, c.Model, c.Year, c.Mileage, c.AvailableNow, c.MinRentPeriod, c.MaxRentPeriod, c.ID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE car_id=$1`, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT car_id, make, model, year, mileage, available_now, min_rent_period, max_rent_period FROM cars`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Mileage, &c.AvailableNow, &c.MinRentPeriod, &c.MaxRentPeriod); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

// requireRows maps a zero-row update or delete to domain.ErrNotFound.
func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
