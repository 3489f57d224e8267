package models

import "time"

// AppointmentDomicile is a wash job at the client's address, serviced by an
// extern employee. ExternEmployeeID stays null until an employee claims the
// job. CompletedAt is set exactly once, on the transition into Completed.
type AppointmentDomicile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Time     time.Time `json:"time"`
	CarType  string    `gorm:"size:50" json:"car_type"`
	CarName  string    `gorm:"size:50" json:"car_name"`
	WashType string    `gorm:"size:50" json:"wash_type"`
	Place    string    `gorm:"size:255" json:"place"`
	Price    float64   `json:"price"`
	Status   string    `gorm:"size:20;default:'Pending'" json:"status"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ExternEmployeeID *uint           `json:"extern_employee_id"`
	ExternEmployee   *ExternEmployee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"extern_employee,omitempty"`

	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentLocation is a wash job at the fixed site. Any intern employee
// may service it; there is no assignment column.
type AppointmentLocation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date     time.Time `json:"date"`
	Time     string    `gorm:"size:10" json:"time"`
	CarType  string    `gorm:"size:50" json:"car_type"`
	CarName  string    `gorm:"size:50" json:"car_name"`
	WashType string    `gorm:"size:50" json:"wash_type"`
	Price    float64   `json:"price"`
	Status   string    `gorm:"size:20;default:'Pending'" json:"status"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
