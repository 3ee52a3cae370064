package models

const UserTable = "users"

type User struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`

	Borrows []BookBorrow `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string { return UserTable }
