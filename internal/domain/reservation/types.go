package reservation

type Status string

const (
	StatusPendingAdminApproval Status = "Pending Admin Approval"
	StatusApproved             Status = "Approved"
	StatusOngoing              Status = "Ongoing"
	StatusPendingPayment       Status = "Pending Payment"
	StatusCompleted            Status = "Completed"
	StatusCancelled            Status = "Cancelled"
	StatusRejected             Status = "Rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingAdminApproval, StatusApproved, StatusOngoing,
		StatusPendingPayment, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTimeBased reports whether billing follows actual machine operation time.
func (s Status) IsTimeBased() bool {
	switch s {
	case StatusOngoing, StatusPendingPayment, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsBookingBased reports whether billing follows the minutes reserved at booking time.
func (s Status) IsBookingBased() bool {
	return s == StatusPendingAdminApproval || s == StatusApproved
}

// AllowsBillingCorrection lists the statuses whose billed lines may still be rewritten.
// Completed reservations are settled and stay immutable.
func (s Status) AllowsBillingCorrection() bool {
	switch s {
	case StatusPendingAdminApproval, StatusApproved, StatusOngoing, StatusPendingPayment:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
