package events

import (
	"time"

	"github.com/spec-kit/school-admin-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountProvisioned EventType = "account_provisioned"
	EventAccountDeleted     EventType = "account_deleted"
	EventStudentDeleted     EventType = "student_deleted"
	EventFeeRecorded        EventType = "fee_recorded"
	EventLoanUpdated        EventType = "loan_updated"
)

// Actor identifies the account performing the operation.
type Actor struct {
	AccountID int64       `json:"account_id"`
	Role      domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountProvisionedPayload payload.
type AccountProvisionedPayload struct {
	AccountID  int64       `json:"account_id"`
	Role       domain.Role `json:"role"`
	Identifier string      `json:"identifier"`
}

// AccountDeletedPayload payload.
type AccountDeletedPayload struct {
	AccountID int64       `json:"account_id"`
	Role      domain.Role `json:"role"`
}

// StudentDeletedPayload payload.
type StudentDeletedPayload struct {
	StudentID int64  `json:"student_id"`
	FullName  string `json:"full_name"`
}

// FeeRecordedPayload payload.
type FeeRecordedPayload struct {
	FeeID         int64                `json:"fee_id"`
	StudentID     int64                `json:"student_id"`
	FeeType       string               `json:"fee_type"`
	Amount        float64              `json:"amount"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

// LoanUpdatedPayload payload.
type LoanUpdatedPayload struct {
	LoanID    int64             `json:"loan_id"`
	StudentID int64             `json:"student_id"`
	BookName  string            `json:"book_name"`
	Status    domain.LoanStatus `json:"status"`
}
