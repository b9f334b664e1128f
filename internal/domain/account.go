package domain

import "time"

// Role enumerates the operator roles. A role is fixed at provisioning time;
// no operation changes it afterwards.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleOfficeStaff Role = "office_staff"
	RoleLibrarian   Role = "librarian"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOfficeStaff, RoleLibrarian:
		return true
	}
	return false
}

// Gender codes follow the single-letter convention of the student records.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// ProfileStatus marks a role profile as employable or not.
type ProfileStatus string

const (
	ProfileStatusActive   ProfileStatus = "Active"
	ProfileStatusInactive ProfileStatus = "Inactive"
)

// RoleProfile holds the role-specific attributes attached to an office-staff
// or librarian account. The owning Account's Role tag discriminates which
// profile table the row lives in; admin accounts carry no profile.
type RoleProfile struct {
	Qualification *string
	DateOfBirth   *time.Time
	Address       *string
	Pincode       *string
	Gender        Gender
	About         *string
	Status        ProfileStatus
	ProfileImage  *string
}

// Account is a provisioned operator identity. Exactly one of email or phone
// must be present; both are unique. Profile is non-nil iff Role is
// office_staff or librarian.
type Account struct {
	ID                 int64
	Email              *string
	Phone              *string
	FirstName          string
	LastName           string
	Role               Role
	Active             bool
	MustChangePassword bool
	PasswordHash       string
	Profile            *RoleProfile
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Identifier returns the login identifier, preferring email over phone.
func (a *Account) Identifier() string {
	if a.Email != nil && *a.Email != "" {
		return *a.Email
	}
	if a.Phone != nil {
		return *a.Phone
	}
	return ""
}
