package repository

import (
	"context"

	"github.com/EdiBulb/CarRentalService/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Car, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	List(ctx context.Context, includeReturned bool) ([]domain.Rental, error)
	// Approve moves an on-process rental to active. Returns domain.ErrNotFound
	// when no row matched, which covers both an absent id and a rental that is
	// past the on-process state.
	Approve(ctx context.Context, id int32) error
	// SetStatus applies the status unconditionally on id match.
	SetStatus(ctx context.Context, id int32, status domain.RentalStatus) error
}
