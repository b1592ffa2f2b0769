package api

import (
	"net/http"

	"fablab-billing/internal/handler/httperr"
	"fablab-billing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("authenticated actor missing from context")

type errorMapping struct {
	target  error
	status  int
	message string
}

// usecaseErrors is checked in order; the first match wins.
var usecaseErrors = []errorMapping{
	{target: errs.ErrReservationNotFound, status: http.StatusNotFound, message: "Reservation not found"},
	{target: errs.ErrSurveyNotFound, status: http.StatusNotFound, message: "Survey not found"},
	{target: errs.ErrReservationAccess, status: http.StatusForbidden, message: "Access denied"},
	{target: errs.ErrBillingCorrectionForbidden, status: http.StatusForbidden, message: "Billing correction requires admin role"},
	{target: errs.ErrPricingForbidden, status: http.StatusForbidden, message: "Pricing changes require admin role"},
	{target: errs.ErrInvalidCorrection, status: http.StatusBadRequest, message: "Invalid billing correction"},
	{target: errs.ErrSurveyAlreadyExists, status: http.StatusConflict, message: "Survey already submitted"},
	{target: errs.ErrDomainValidation, status: http.StatusUnprocessableEntity, message: "Domain validation failed"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range usecaseErrors {
		if errs.Is(err, m.target) {
			var detail any
			if m.status == http.StatusUnprocessableEntity || m.status == http.StatusBadRequest {
				detail = err.Error()
			}
			httperr.AbortWithError(c, m.status, err, m.message, detail)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
