package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/EdiBulb/CarRentalService/internal/domain"
	"github.com/EdiBulb/CarRentalService/internal/logger"
	"github.com/EdiBulb/CarRentalService/internal/service"

	"github.com/google/uuid"
)

// Menu drives the blocking console loop. The services are constructed once at
// startup and injected here; there is no global registry.
type Menu struct {
	auth    service.AuthService
	cars    service.CarService
	rentals service.RentalService
	in      *bufio.Scanner
	out     io.Writer
}

func New(auth service.AuthService, cars service.CarService, rentals service.RentalService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		auth:    auth,
		cars:    cars,
		rentals: rentals,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run blocks on the top-level menu until Exit is chosen or input is closed.
// Domain errors are printed and the loop continues; they are never fatal.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\n1. Sign Up")
		fmt.Fprintln(m.out, "2. Log In")
		fmt.Fprintln(m.out, "3. Exit")

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return nil
		}

		switch parseMainCommand(choice) {
		case mainSignUp:
			if err := m.signUp(ctx); err != nil {
				return nil
			}
		case mainLogIn:
			if err := m.logIn(ctx); err != nil {
				return nil
			}
		case mainExit:
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice, please try again.")
		}
	}
}

func (m *Menu) signUp(ctx context.Context) error {
	name, err := m.prompt("Enter your name: ")
	if err != nil {
		return err
	}
	email, err := m.prompt("Enter your email: ")
	if err != nil {
		return err
	}
	password, err := m.prompt("Enter your password: ")
	if err != nil {
		return err
	}
	role, err := m.prompt("Enter your role (customer/admin): ")
	if err != nil {
		return err
	}

	user, err := m.auth.Register(ctx, name, email, password, domain.Role(role))
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintf(m.out, "\nUser %s registered successfully with role %s.\n", user.Name, user.Role)
	return nil
}

func (m *Menu) logIn(ctx context.Context) error {
	email, err := m.prompt("Enter your email: ")
	if err != nil {
		return err
	}
	password, err := m.prompt("Enter your password: ")
	if err != nil {
		return err
	}

	principal, err := m.auth.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintf(m.out, "\nLogged in as %s with role %s\n", principal.Name, principal.Role)

	// One session id per login, for log correlation only.
	sessionLog := logger.Get().With(
		"session_id", uuid.NewString(),
		"user_id", principal.ID,
		"role", string(principal.Role),
	)
	sessionLog.Info("session started")
	defer sessionLog.Info("session ended")

	switch principal.Role {
	case domain.RoleAdmin:
		return m.adminLoop(ctx, principal)
	case domain.RoleCustomer:
		return m.customerLoop(ctx, principal)
	default:
		sessionLog.Warn("unknown role on principal")
		return nil
	}
}

func (m *Menu) adminLoop(ctx context.Context, p *domain.Principal) error {
	for {
		fmt.Fprintf(m.out, "\nThere are %s's task.\n", p.Role)
		fmt.Fprintln(m.out, "\n1. Add Car")
		fmt.Fprintln(m.out, "2. Update Car")
		fmt.Fprintln(m.out, "3. Delete Car")
		fmt.Fprintln(m.out, "4. List Cars")
		fmt.Fprintln(m.out, "5. Approve Rental")
		fmt.Fprintln(m.out, "6. Cancel Rental")
		fmt.Fprintln(m.out, "7. Complete Rental")
		fmt.Fprintln(m.out, "8. Logout")

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch parseAdminCommand(choice) {
		case adminAddCar:
			err = m.addCar(ctx)
		case adminUpdateCar:
			err = m.updateCar(ctx)
		case adminDeleteCar:
			err = m.deleteCar(ctx)
		case adminListCars:
			err = m.listCars(ctx)
		case adminApproveRental:
			err = m.applyRentalTransition(ctx, m.rentals.Approve,
				"Rental approved successfully.", "Rental not found or already processed.")
		case adminCancelRental:
			err = m.applyRentalTransition(ctx, m.rentals.Cancel,
				"Rental cancelled successfully.", "Rental not found.")
		case adminCompleteRental:
			err = m.applyRentalTransition(ctx, m.rentals.Complete,
				"Rental completed successfully.", "Rental not found.")
		case adminLogout:
			fmt.Fprintln(m.out, "Logging out...")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice, please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) customerLoop(ctx context.Context, p *domain.Principal) error {
	for {
		fmt.Fprintf(m.out, "\nThere are %s's task.\n", p.Role)
		fmt.Fprintln(m.out, "\n1. Rent a Car")
		fmt.Fprintln(m.out, "2. View Rentals")
		fmt.Fprintln(m.out, "3. Return a Car")
		fmt.Fprintln(m.out, "4. Logout")

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch parseCustomerCommand(choice) {
		case customerRentCar:
			err = m.rentCar(ctx, p)
		case customerViewRentals:
			err = m.viewRentals(ctx)
		case customerReturnCar:
			err = m.applyRentalTransition(ctx, m.rentals.Return,
				"Rental returned successfully.", "Rental not found.")
		case customerLogout:
			fmt.Fprintln(m.out, "Logging out...")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice, please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) addCar(ctx context.Context) error {
	car, err := m.promptCarFields()
	if err != nil {
		return err
	}
	if car == nil {
		return nil
	}
	if err := m.cars.Add(ctx, car); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintln(m.out, "Car added successfully.")
	return nil
}

func (m *Menu) updateCar(ctx context.Context) error {
	id, ok, err := m.promptInt32("Enter car ID to update: ")
	if err != nil || !ok {
		return err
	}
	car, err := m.promptCarFields()
	if err != nil {
		return err
	}
	if car == nil {
		return nil
	}
	car.ID = id
	if err := m.cars.Update(ctx, car); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(m.out, "Car not found.")
		} else {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
		return nil
	}
	fmt.Fprintln(m.out, "Car updated successfully.")
	return nil
}

func (m *Menu) deleteCar(ctx context.Context) error {
	id, ok, err := m.promptInt32("Enter car ID to delete: ")
	if err != nil || !ok {
		return err
	}
	if err := m.cars.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(m.out, "Car not found.")
		} else {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
		return nil
	}
	fmt.Fprintln(m.out, "Car deleted successfully.")
	return nil
}

func (m *Menu) listCars(ctx context.Context) error {
	cars, err := m.cars.List(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintln(m.out, "car_id, make, model, year, mileage, available_now, min_rent_period, max_rent_period")
	for _, c := range cars {
		fmt.Fprintf(m.out, "%d, %s, %s, %d, %d, %t, %d, %d\n",
			c.ID, c.Make, c.Model, c.Year, c.Mileage, c.AvailableNow, c.MinRentPeriod, c.MaxRentPeriod)
	}
	return nil
}

func (m *Menu) rentCar(ctx context.Context, p *domain.Principal) error {
	carID, ok, err := m.promptInt32("Enter car ID to rent: ")
	if err != nil || !ok {
		return err
	}
	startDate, err := m.prompt("Enter start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	endDate, err := m.prompt("Enter end date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	rental, err := m.rentals.Create(ctx, carID, p.ID, startDate, endDate)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintf(m.out, "Rental created successfully. Total fee: $%.2f\n", float64(rental.TotalFeeCents)/100)
	return nil
}

func (m *Menu) viewRentals(ctx context.Context) error {
	// Returned rentals are history and stay hidden from the customer view.
	rentals, err := m.rentals.List(ctx, false)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return nil
	}
	if len(rentals) == 0 {
		fmt.Fprintln(m.out, "\nYou do not have booking yet")
		return nil
	}
	fmt.Fprintln(m.out, "\n[rental_id, car_id, user_id, start_date, end_date, total_fee, status]")
	for _, rt := range rentals {
		fmt.Fprintf(m.out, "%d, %d, %d, %s, %s, %.2f, %s\n",
			rt.ID, rt.CarID, rt.UserID, rt.StartDate, rt.EndDate, float64(rt.TotalFeeCents)/100, rt.Status)
	}
	return nil
}

func (m *Menu) applyRentalTransition(ctx context.Context, transition func(context.Context, int32) error, okMsg, notFoundMsg string) error {
	id, ok, err := m.promptInt32("Enter rental ID: ")
	if err != nil || !ok {
		return err
	}
	if err := transition(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(m.out, notFoundMsg)
		} else {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
		return nil
	}
	fmt.Fprintln(m.out, okMsg)
	return nil
}

// promptCarFields collects the full car row. Returns (nil, nil) when a field
// failed to parse; the caller re-shows its menu.
func (m *Menu) promptCarFields() (*domain.Car, error) {
	carMake, err := m.prompt("Enter car make: ")
	if err != nil {
		return nil, err
	}
	model, err := m.prompt("Enter car model: ")
	if err != nil {
		return nil, err
	}
	year, ok, err := m.promptInt32("Enter car year: ")
	if err != nil || !ok {
		return nil, err
	}
	mileage, ok, err := m.promptInt32("Enter car mileage: ")
	if err != nil || !ok {
		return nil, err
	}
	available, ok, err := m.promptBool("Is the car available now? (yes/no): ")
	if err != nil || !ok {
		return nil, err
	}
	minDays, ok, err := m.promptInt32("Enter minimum rent period (days): ")
	if err != nil || !ok {
		return nil, err
	}
	maxDays, ok, err := m.promptInt32("Enter maximum rent period (days): ")
	if err != nil || !ok {
		return nil, err
	}

	return &domain.Car{
		Make:          carMake,
		Model:         model,
		Year:          year,
		Mileage:       mileage,
		AvailableNow:  available,
		MinRentPeriod: minDays,
		MaxRentPeriod: maxDays,
	}, nil
}

// prompt reads one trimmed line. The error is non-nil only when input is
// exhausted, which ends the console loop.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) promptInt32(label string) (int32, bool, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.ParseInt(raw, 10, 32)
	if convErr != nil {
		fmt.Fprintln(m.out, "Invalid number, please try again.")
		return 0, false, nil
	}
	return int32(n), true, nil
}

func (m *Menu) promptBool(label string) (bool, bool, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return false, false, err
	}
	switch strings.ToLower(raw) {
	case "yes", "y", "true", "1":
		return true, true, nil
	case "no", "n", "false", "0":
		return false, true, nil
	default:
		fmt.Fprintln(m.out, "Please answer yes or no.")
		return false, false, nil
	}
}
