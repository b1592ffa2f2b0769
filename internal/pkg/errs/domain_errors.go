package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationAccess   = errors.New("reservation access denied")

	// Billing errors
	ErrBillingCorrectionForbidden = errors.New("billing correction requires admin role")
	ErrInvalidCorrection          = errors.New("invalid billing correction")

	// Pricing errors
	ErrPricingForbidden = errors.New("pricing changes require admin role")

	// Survey errors
	ErrSurveyNotFound      = errors.New("survey not found")
	ErrSurveyAlreadyExists = errors.New("survey already submitted for this reservation")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
