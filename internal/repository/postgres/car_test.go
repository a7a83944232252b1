package postgres_test

import (
	"context"
	"testing"

	"github.com/EdiBulb/CarRentalService/internal/domain"
	"github.com/EdiBulb/CarRentalService/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCarRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	car := &domain.Car{
		Make:          "Toyota",
		Model:         "Corolla",
		Year:          2020,
		Mileage:       42000,
		AvailableNow:  true,
		MinRentPeriod: 1,
		MaxRentPeriod: 30,
	}

	mock.ExpectQuery("INSERT INTO cars").
		WithArgs(car.Make, car.Model, car.Year, car.Mileage, car.AvailableNow, car.MinRentPeriod, car.MaxRentPeriod).
		WillReturnRows(sqlmock.NewRows([]string{"car_id"}).AddRow(1))

	assert.NoError(t, repo.Create(ctx, car))
	assert.Equal(t, int32(1), car.ID)
}

func TestCarRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	car := &domain.Car{
		ID:            1,
		Make:          "Toyota",
		Model:         "Corolla",
		Year:          2020,
		Mileage:       43000,
		AvailableNow:  false,
		MinRentPeriod: 1,
		MaxRentPeriod: 30,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE cars SET").
			WithArgs(car.Make, car.Model, car.Year, car.Mileage, car.AvailableNow, car.MinRentPeriod, car.MaxRentPeriod, car.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, car))
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec("UPDATE cars SET").
			WithArgs(car.Make, car.Model, car.Year, car.Mileage, car.AvailableNow, car.MinRentPeriod, car.MaxRentPeriod, car.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, car), domain.ErrNotFound)
	})
}

func TestCarRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cars WHERE car_id=\\$1").
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1))
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cars WHERE car_id=\\$1").
			WithArgs(int32(999)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 999), domain.ErrNotFound)
	})
}

func TestCarRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"car_id", "make", "model", "year", "mileage", "available_now", "min_rent_period", "max_rent_period"}).
		AddRow(1, "Toyota", "Corolla", 2020, 42000, true, 1, 30)

	mock.ExpectQuery("SELECT (.+) FROM cars WHERE car_id = \\$1").
		WithArgs(int32(1)).
		WillReturnRows(rows)

	car, err := repo.GetByID(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, car.AvailableNow)
	assert.Equal(t, "Corolla", car.Model)
}

func TestCarRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"car_id", "make", "model", "year", "mileage", "available_now", "min_rent_period", "max_rent_period"}).
		AddRow(1, "Toyota", "Corolla", 2020, 42000, true, 1, 30).
		AddRow(2, "Honda", "Civic", 2019, 61000, false, 3, 14)

	mock.ExpectQuery("SELECT (.+) FROM cars").WillReturnRows(rows)

	cars, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, cars, 2)
	assert.Equal(t, "Civic", cars[1].Model)
}
