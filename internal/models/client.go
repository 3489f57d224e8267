package models

import "time"

// Client email is unique within this table only. The same address may also
// exist in the employee or admin tables; the tables are disjoint on purpose.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:255;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Age          int    `json:"age"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
