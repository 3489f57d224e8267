package models

// History rows accrue once per appointment completion. The unique index over
// (employee, client, appointment) is what makes accrual idempotent at the
// store level.

type ExternEmployeeHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ExternEmployeeID uint           `gorm:"uniqueIndex:idx_extern_history;not null" json:"extern_employee_id"`
	ExternEmployee   ExternEmployee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uint   `gorm:"uniqueIndex:idx_extern_history;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AppointmentID uint                `gorm:"uniqueIndex:idx_extern_history;not null" json:"appointment_id"`
	Appointment   AppointmentDomicile `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CarsWashed int `gorm:"default:0" json:"cars_washed"`
}

type InternEmployeeHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	InternEmployeeID uint           `gorm:"uniqueIndex:idx_intern_history;not null" json:"intern_employee_id"`
	InternEmployee   InternEmployee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uint   `gorm:"uniqueIndex:idx_intern_history;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AppointmentID uint                `gorm:"uniqueIndex:idx_intern_history;not null" json:"appointment_id"`
	Appointment   AppointmentLocation `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CarsWashed int `gorm:"default:0" json:"cars_washed"`
}
