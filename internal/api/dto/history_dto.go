package dto

// CreateFeesRequest payload for recording a fee payment.
type CreateFeesRequest struct {
	StudentID     int64   `json:"student_id" validate:"required,gt=0"`
	FeeType       string  `json:"fee_type" validate:"required"`
	AcademicYear  *string `json:"academic_year"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentDate   string  `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentStatus string  `json:"payment_status" validate:"omitempty,oneof=paid pending partial"`
	Remarks       *string `json:"remarks"`
}

// UpdateFeesRequest payload for partial fee record updates.
type UpdateFeesRequest struct {
	FeeType       *string  `json:"fee_type"`
	AcademicYear  *string  `json:"academic_year"`
	Amount        *float64 `json:"amount"`
	PaymentDate   *string  `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentStatus *string  `json:"payment_status" validate:"omitempty,oneof=paid pending partial"`
	Remarks       *string  `json:"remarks"`
}

// FeesResponse is the public view of a fee record.
type FeesResponse struct {
	ID            int64   `json:"id"`
	StudentID     int64   `json:"student_id"`
	FeeType       string  `json:"fee_type"`
	AcademicYear  *string `json:"academic_year,omitempty"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentStatus string  `json:"payment_status"`
	Remarks       *string `json:"remarks,omitempty"`
}

// CreateLoanRequest payload for recording a borrowed book.
type CreateLoanRequest struct {
	StudentID    int64   `json:"student_id" validate:"required,gt=0"`
	BookName     string  `json:"book_name" validate:"required"`
	BookCategory *string `json:"book_category" validate:"omitempty,oneof=fiction non_fiction novel biography science history others"`
	BorrowDate   string  `json:"borrow_date" validate:"required,datetime=2006-01-02"`
	ReturnDate   *string `json:"return_date" validate:"omitempty,datetime=2006-01-02"`
	Status       string  `json:"status" validate:"omitempty,oneof=borrowed returned"`
}

// UpdateLoanRequest payload for partial loan record updates.
type UpdateLoanRequest struct {
	BookName     *string `json:"book_name"`
	BookCategory *string `json:"book_category" validate:"omitempty,oneof=fiction non_fiction novel biography science history others"`
	BorrowDate   *string `json:"borrow_date" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate   *string `json:"return_date" validate:"omitempty,datetime=2006-01-02"`
	Status       *string `json:"status" validate:"omitempty,oneof=borrowed returned"`
}

// LoanResponse is the public view of a loan record.
type LoanResponse struct {
	ID           int64   `json:"id"`
	StudentID    int64   `json:"student_id"`
	BookName     string  `json:"book_name"`
	BookCategory *string `json:"book_category,omitempty"`
	BorrowDate   string  `json:"borrow_date"`
	ReturnDate   *string `json:"return_date,omitempty"`
	Status       string  `json:"status"`
}
