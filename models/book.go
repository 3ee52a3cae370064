package models

const BookTable = "books"

type Book struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`

	Borrows []BookBorrow `gorm:"foreignKey:BookID" json:"-"`
}

func (Book) TableName() string { return BookTable }
