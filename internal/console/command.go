package console

import "strings"

// Menu choices are explicit enumerated commands dispatched with a switch, one
// enum per menu.

type mainCommand int

const (
	mainUnknown mainCommand = iota
	mainSignUp
	mainLogIn
	mainExit
)

type adminCommand int

const (
	adminUnknown adminCommand = iota
	adminAddCar
	adminUpdateCar
	adminDeleteCar
	adminListCars
	adminApproveRental
	adminCancelRental
	adminCompleteRental
	adminLogout
)

type customerCommand int

const (
	customerUnknown customerCommand = iota
	customerRentCar
	customerViewRentals
	customerReturnCar
	customerLogout
)

func parseMainCommand(input string) mainCommand {
	switch strings.TrimSpace(input) {
	case "1":
		return mainSignUp
	case "2":
		return mainLogIn
	case "3":
		return mainExit
	default:
		return mainUnknown
	}
}

func parseAdminCommand(input string) adminCommand {
	switch strings.TrimSpace(input) {
	case "1":
		return adminAddCar
	case "2":
		return adminUpdateCar
	case "3":
		return adminDeleteCar
	case "4":
		return adminListCars
	case "5":
		return adminApproveRental
	case "6":
		return adminCancelRental
	case "7":
		return adminCompleteRental
	case "8":
		return adminLogout
	default:
		return adminUnknown
	}
}

func parseCustomerCommand(input string) customerCommand {
	switch strings.TrimSpace(input) {
	case "1":
		return customerRentCar
	case "2":
		return customerViewRentals
	case "3":
		return customerReturnCar
	case "4":
		return customerLogout
	default:
		return customerUnknown
	}
}
