package service

import (
	"context"

	"github.com/EdiBulb/CarRentalService/internal/domain"
	"github.com/EdiBulb/CarRentalService/internal/logger"
	"github.com/EdiBulb/CarRentalService/internal/repository"
)

type carService struct {
	carRepo repository.CarRepository
}

func NewCarService(carRepo repository.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

func (s *carService) Add(ctx context.Context, car *domain.Car) error {
	// Numeric ranges and min/max rent periods are stored as given; the admin
	// console is trusted input.
	if err := s.carRepo.Create(ctx, car); err != nil {
		return err
	}
	logger.Info("car added", "car_id", car.ID, "make", car.Make, "model", car.Model)
	return nil
}

func (s *carService) Update(ctx context.Context, car *domain.Car) error {
	if err := s.carRepo.Update(ctx, car); err != nil {
		return err
	}
	logger.Info("car updated", "car_id", car.ID)
	return nil
}

func (s *carService) Delete(ctx context.Context, id int32) error {
	if err := s.carRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("car deleted", "car_id", id)
	return nil
}

func (s *carService) List(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}
