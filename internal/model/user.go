package model

import (
	"gorm.io/gorm"
)

// User rows are provisioned by the identity service; this table only
// backs foreign keys and display fields.
type User struct {
	gorm.Model
	Email    string `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Username string `gorm:"column:username;type:varchar(150);not null"`
	FullName string `gorm:"column:full_name;type:varchar(255)"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}
