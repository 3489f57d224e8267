package dto

import "github.com/washpoint/carwash-api/internal/models"

type ExternHistoryDTO struct {
	ID          uint                        `json:"id"`
	ClientName  string                      `json:"client_name"`
	CarsWashed  int                         `json:"cars_washed"`
	Appointment *models.AppointmentDomicile `json:"appointment_details"`
}

type InternHistoryDTO struct {
	ID          uint                        `json:"id"`
	ClientName  string                      `json:"client_name"`
	CarsWashed  int                         `json:"cars_washed"`
	Appointment *models.AppointmentLocation `json:"appointment_details"`
}

func NewExternHistoryDTO(row models.ExternEmployeeHistory) ExternHistoryDTO {
	ap := row.Appointment
	return ExternHistoryDTO{
		ID:          row.ID,
		ClientName:  row.Client.FullName,
		CarsWashed:  row.CarsWashed,
		Appointment: &ap,
	}
}

func NewInternHistoryDTO(row models.InternEmployeeHistory) InternHistoryDTO {
	ap := row.Appointment
	return InternHistoryDTO{
		ID:          row.ID,
		ClientName:  row.Client.FullName,
		CarsWashed:  row.CarsWashed,
		Appointment: &ap,
	}
}
