package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Idempotent DDL so the tables can be provisioned on first connect against an
// empty database and re-run safely afterwards.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('customer', 'admin'))
	)`,
	`CREATE TABLE IF NOT EXISTS cars (
		car_id SERIAL PRIMARY KEY,
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		year INT NOT NULL,
		mileage INT NOT NULL,
		available_now BOOLEAN NOT NULL,
		min_rent_period INT NOT NULL,
		max_rent_period INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rentals (
		rental_id SERIAL PRIMARY KEY,
		car_id INT NOT NULL REFERENCES cars (car_id),
		user_id INT NOT NULL REFERENCES users (user_id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		total_fee_cents INT NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('on process', 'active', 'cancelled', 'completed', 'returned'))
	)`,
}

// EnsureSchema provisions the users, cars and rentals tables.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
