package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/EdiBulb/CarRentalService/internal/domain"
	"github.com/EdiBulb/CarRentalService/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := &domain.User{
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$hash",
			Role:         domain.RoleCustomer,
		}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Name, user.Email, user.PasswordHash, user.Role).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

		err := repo.Create(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		user := &domain.User{
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$hash",
			Role:         domain.RoleCustomer,
		}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Name, user.Email, user.PasswordHash, user.Role).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, user)
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password", "role"}).
			AddRow(1, "Alice", "alice@example.com", "$2a$10$hash", "admin")

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("alice@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, user)
	})
}
