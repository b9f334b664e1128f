package domain

import "time"

// Student is an independently addressable root entity. Its library and fees
// history collections cascade when the student is deleted.
type Student struct {
	ID            int64
	FullName      string
	DateOfBirth   *time.Time
	ClassName     *string
	Division      *string
	Address       *string
	Gender        Gender
	Guardian      *string
	Phone         *string
	State         *string
	District      *string
	Pincode       *string
	AcademicYear  *string
	AdmissionDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
