package domain

import "time"

// PaymentStatus tracks fee settlement progress.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
)

// Valid reports whether the status is a known payment state.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusPartial:
		return true
	}
	return false
}

// FeesHistory records one fee payment entry for a student. Amount is always
// strictly positive and stored with two decimal places.
type FeesHistory struct {
	ID            int64
	StudentID     int64
	FeeType       string
	AcademicYear  *string
	Amount        float64
	PaymentDate   time.Time
	PaymentStatus PaymentStatus
	Remarks       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
