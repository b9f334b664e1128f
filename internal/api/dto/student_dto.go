package dto

// CreateStudentRequest payload for registering a student.
type CreateStudentRequest struct {
	FullName      string  `json:"full_name" validate:"required"`
	DateOfBirth   *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ClassName     *string `json:"class_name"`
	Division      *string `json:"division"`
	Address       *string `json:"address"`
	Gender        string  `json:"gender" validate:"omitempty,oneof=M F O"`
	Guardian      *string `json:"guardian"`
	Phone         *string `json:"phone"`
	State         *string `json:"state"`
	District      *string `json:"district"`
	Pincode       *string `json:"pincode"`
	AcademicYear  *string `json:"academic_year"`
	AdmissionDate *string `json:"admission_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateStudentRequest payload for partial student updates.
type UpdateStudentRequest struct {
	FullName      string  `json:"full_name"`
	DateOfBirth   *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ClassName     *string `json:"class_name"`
	Division      *string `json:"division"`
	Address       *string `json:"address"`
	Gender        string  `json:"gender" validate:"omitempty,oneof=M F O"`
	Guardian      *string `json:"guardian"`
	Phone         *string `json:"phone"`
	State         *string `json:"state"`
	District      *string `json:"district"`
	Pincode       *string `json:"pincode"`
	AcademicYear  *string `json:"academic_year"`
	AdmissionDate *string `json:"admission_date" validate:"omitempty,datetime=2006-01-02"`
}

// StudentResponse is the public view of a student record.
type StudentResponse struct {
	ID            int64   `json:"id"`
	FullName      string  `json:"full_name"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	ClassName     *string `json:"class_name,omitempty"`
	Division      *string `json:"division,omitempty"`
	Address       *string `json:"address,omitempty"`
	Gender        string  `json:"gender"`
	Guardian      *string `json:"guardian,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	State         *string `json:"state,omitempty"`
	District      *string `json:"district,omitempty"`
	Pincode       *string `json:"pincode,omitempty"`
	AcademicYear  *string `json:"academic_year,omitempty"`
	AdmissionDate *string `json:"admission_date,omitempty"`
}
