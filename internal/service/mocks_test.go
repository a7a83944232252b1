package service_test

import (
	"context"

	"github.com/EdiBulb/CarRentalService/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Car), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if cars := args.Get(0); cars != nil {
		return cars.([]domain.Car), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepo) List(ctx context.Context, includeReturned bool) ([]domain.Rental, error) {
	args := m.Called(ctx, includeReturned)
	if rentals := args.Get(0); rentals != nil {
		return rentals.([]domain.Rental), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRentalRepo) Approve(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRentalRepo) SetStatus(ctx context.Context, id int32, status domain.RentalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
