package service

import (
	"context"
	"fmt"
	"time"

	"github.com/EdiBulb/CarRentalService/internal/domain"
	"github.com/EdiBulb/CarRentalService/internal/logger"
	"github.com/EdiBulb/CarRentalService/internal/repository"
)

const dateLayout = "2006-01-02"

type rentalService struct {
	rentalRepo repository.RentalRepository
	carRepo    repository.CarRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, carRepo repository.CarRepository) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		carRepo:    carRepo,
	}
}

func (s *rentalService) Create(ctx context.Context, carID, userID int32, startDateStr, endDateStr string) (*domain.Rental, error) {
	start, err := time.Parse(dateLayout, startDateStr)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, endDateStr)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date must be on or after start date", domain.ErrInvalidDate)
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if !car.AvailableNow {
		return nil, domain.ErrCarUnavailable
	}

	// Both the start and the end date are charged.
	days := int32(end.Sub(start).Hours()/24) + 1

	rental := &domain.Rental{
		CarID:         carID,
		UserID:        userID,
		StartDate:     start.Format(dateLayout),
		EndDate:       end.Format(dateLayout),
		TotalFeeCents: days * domain.DailyRateCents,
		Status:        domain.RentalStatusOnProcess,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("rental created", "rental_id", rental.ID, "car_id", carID, "user_id", userID, "total_fee_cents", rental.TotalFeeCents)
	return rental, nil
}

func (s *rentalService) List(ctx context.Context, includeReturned bool) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx, includeReturned)
}

// Approve succeeds only while the rental is still on process.
func (s *rentalService) Approve(ctx context.Context, id int32) error {
	if err := s.rentalRepo.Approve(ctx, id); err != nil {
		return err
	}
	logger.Info("rental approved", "rental_id", id)
	return nil
}

// Cancel, Complete and Return apply on any id match regardless of the prior
// status.
func (s *rentalService) Cancel(ctx context.Context, id int32) error {
	if err := s.rentalRepo.SetStatus(ctx, id, domain.RentalStatusCancelled); err != nil {
		return err
	}
	logger.Info("rental cancelled", "rental_id", id)
	return nil
}

func (s *rentalService) Complete(ctx context.Context, id int32) error {
	if err := s.rentalRepo.SetStatus(ctx, id, domain.RentalStatusCompleted); err != nil {
		return err
	}
	logger.Info("rental completed", "rental_id", id)
	return nil
}

func (s *rentalService) Return(ctx context.Context, id int32) error {
	if err := s.rentalRepo.SetStatus(ctx, id, domain.RentalStatusReturned); err != nil {
		return err
	}
	logger.Info("rental returned", "rental_id", id)
	return nil
}
