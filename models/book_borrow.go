package models

import "time"

const BorrowTable = "book_borrows"

// BookBorrow is one lending transaction. A borrow is "active" while
// ReturnDate is nil; Score is only recorded on return and stays nil for
// unscored returns.
type BookBorrow struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"userId"`
	BookID uint `gorm:"index;not null" json:"bookId"`

	User User `json:"-"`
	Book Book `json:"-"`

	BorrowDate time.Time  `gorm:"index;not null" json:"borrowDate"`
	ReturnDate *time.Time `gorm:"index" json:"returnDate,omitempty"`
	Score      *int64     `json:"score,omitempty"`
}

func (BookBorrow) TableName() string { return BorrowTable }
