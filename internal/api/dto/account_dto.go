package dto

// ProvisionAccountRequest payload for creating office-staff or librarian
// accounts. At least one of email/phone is required; checked by the service
// after phone normalization.
type ProvisionAccountRequest struct {
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	FirstName     string  `json:"first_name" validate:"required"`
	LastName      string  `json:"last_name" validate:"required"`
	Qualification *string `json:"qualification"`
	DateOfBirth   *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address       *string `json:"address"`
	Pincode       *string `json:"pincode"`
	Gender        string  `json:"gender" validate:"omitempty,oneof=M F O"`
	About         *string `json:"about"`
	Status        string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
	ProfileImage  *string `json:"profile_image"`
}

// UpdateAccountRequest payload for partial account updates.
type UpdateAccountRequest struct {
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Active        *bool   `json:"active"`
	Qualification *string `json:"qualification"`
	DateOfBirth   *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address       *string `json:"address"`
	Pincode       *string `json:"pincode"`
	Gender        string  `json:"gender" validate:"omitempty,oneof=M F O"`
	About         *string `json:"about"`
	Status        string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
	ProfileImage  *string `json:"profile_image"`
}

// ProfileResponse mirrors the role profile attached to an account.
type ProfileResponse struct {
	Qualification *string `json:"qualification,omitempty"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	Address       *string `json:"address,omitempty"`
	Pincode       *string `json:"pincode,omitempty"`
	Gender        string  `json:"gender"`
	About         *string `json:"about,omitempty"`
	Status        string  `json:"status"`
	ProfileImage  *string `json:"profile_image,omitempty"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID                 int64            `json:"id"`
	Email              *string          `json:"email,omitempty"`
	Phone              *string          `json:"phone,omitempty"`
	FirstName          string           `json:"first_name"`
	LastName           string           `json:"last_name"`
	Role               string           `json:"role"`
	Active             bool             `json:"active"`
	MustChangePassword bool             `json:"must_change_password"`
	Profile            *ProfileResponse `json:"profile,omitempty"`
}
