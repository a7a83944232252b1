package service

import (
	"context"

	"github.com/EdiBulb/CarRentalService/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.Principal, error)
}

// CarService is the inventory component. Admin-only access is enforced by the
// console layer, which only reaches these operations from the admin menu.
type CarService interface {
	Add(ctx context.Context, car *domain.Car) error
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Car, error)
}

type RentalService interface {
	Create(ctx context.Context, carID, userID int32, startDate, endDate string) (*domain.Rental, error)
	List(ctx context.Context, includeReturned bool) ([]domain.Rental, error)
	Approve(ctx context.Context, id int32) error
	Cancel(ctx context.Context, id int32) error
	Complete(ctx context.Context, id int32) error
	Return(ctx context.Context, id int32) error
}
