package models

import "time"

// Feedback stays hidden from the public listing until an admin approves it.
type Feedback struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ExternEmployeeID uint           `json:"extern_employee_id"`
	ExternEmployee   ExternEmployee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Rating   int    `json:"rating"`
	Text     string `gorm:"size:500" json:"text"`
	Approved bool   `gorm:"default:false" json:"approved"`

	CreatedAt time.Time `json:"created_at"`
}

type Rating struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ExternEmployeeID uint           `json:"extern_employee_id"`
	ExternEmployee   ExternEmployee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Score int `json:"score"`

	CreatedAt time.Time `json:"created_at"`
}
