package commands

import "fablab-billing/internal/pkg/errs"

var (
	ErrReservationNotFound     = errs.ErrReservationNotFound
	ErrReservationAccess       = errs.ErrReservationAccess
	ErrCorrectionForbidden     = errs.ErrBillingCorrectionForbidden
	ErrInvalidCorrection       = errs.ErrInvalidCorrection
	ErrPricingForbidden        = errs.ErrPricingForbidden
	ErrSurveyAlreadyExists     = errs.ErrSurveyAlreadyExists
	ErrDomainValidation        = errs.ErrDomainValidation
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)
