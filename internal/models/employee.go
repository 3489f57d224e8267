package models

import "time"

// ExternEmployee services domicile appointments (at the client's place).
type ExternEmployee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:255;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Age          int    `json:"age"`
	ProfileImage string `gorm:"size:255" json:"profile_image"`

	// Derived from ratings, recomputed on each rating write.
	FinalRating float64 `gorm:"default:0" json:"final_rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InternEmployee services location appointments at the fixed site. There is
// no per-appointment assignment for interns.
type InternEmployee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:255;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	ProfileImage string `gorm:"size:255" json:"profile_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
