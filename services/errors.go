package services

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrPartnershipNotFound = errors.New("partnership not found")

	ErrMissingServices      = errors.New("at least one service is required")
	ErrInvalidStatus        = errors.New("invalid appointment status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidDateRange     = errors.New("invalid date range")
)

// IsNotFound reports whether err is one of the client-correctable lookup failures.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrAppointmentNotFound, ErrCustomerNotFound, ErrUserNotFound,
		ErrServiceNotFound, ErrProductNotFound, ErrPartnershipNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsValidation reports whether err was caused by a malformed request.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingServices) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidPaymentMethod) ||
		errors.Is(err, ErrInvalidDateRange)
}
