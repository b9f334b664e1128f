package domain

import "time"

// LoanStatus tracks the lifecycle of a borrowed book.
type LoanStatus string

const (
	LoanStatusBorrowed LoanStatus = "borrowed"
	LoanStatusReturned LoanStatus = "returned"
)

// Valid reports whether the status is a known loan state.
func (s LoanStatus) Valid() bool {
	return s == LoanStatusBorrowed || s == LoanStatusReturned
}

// BookCategory classifies borrowed books.
type BookCategory string

const (
	BookCategoryFiction    BookCategory = "fiction"
	BookCategoryNonFiction BookCategory = "non_fiction"
	BookCategoryNovel      BookCategory = "novel"
	BookCategoryBiography  BookCategory = "biography"
	BookCategoryScience    BookCategory = "science"
	BookCategoryHistory    BookCategory = "history"
	BookCategoryOthers     BookCategory = "others"
)

// Valid reports whether the category is one of the known shelves.
func (c BookCategory) Valid() bool {
	switch c {
	case BookCategoryFiction, BookCategoryNonFiction, BookCategoryNovel,
		BookCategoryBiography, BookCategoryScience, BookCategoryHistory, BookCategoryOthers:
		return true
	}
	return false
}

// LibraryHistory records a single borrow/return cycle for a student.
// A returned record always carries ReturnDate >= BorrowDate.
type LibraryHistory struct {
	ID           int64
	StudentID    int64
	BookName     string
	BookCategory *BookCategory
	BorrowDate   time.Time
	ReturnDate   *time.Time
	Status       LoanStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
