package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name     string `gorm:"type:varchar(100)"`
	Password string `gorm:"not null" json:"-"`
}
