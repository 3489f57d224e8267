package models

import "time"

type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:255;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
