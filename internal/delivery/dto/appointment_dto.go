package dto

// Request DTOs

type CreateAppointmentRequest struct {
	ClientID        int    `json:"clientId" validate:"required,gt=0"`
	DoctorID        int    `json:"doctorId" validate:"required,gt=0"`
	AppointmentDate string `json:"appointmentdate" validate:"required,date"`
	Description     string `json:"description" validate:"required"`
	Status          string `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled no-show"`
}

type UpdateAppointmentRequest struct {
	ClientID        *int    `json:"clientId,omitempty" validate:"omitempty,gt=0"`
	DoctorID        *int    `json:"doctorId,omitempty" validate:"omitempty,gt=0"`
	AppointmentDate *string `json:"appointmentdate,omitempty" validate:"omitempty,date"`
	Description     *string `json:"description,omitempty" validate:"omitempty,min=1"`
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled no-show"`
}

func (r *UpdateAppointmentRequest) IsEmpty() bool {
	return r.ClientID == nil && r.DoctorID == nil && r.AppointmentDate == nil &&
		r.Description == nil && r.Status == nil
}

// Response DTOs

type AppointmentResponse struct {
	ID              int                    `json:"id"`
	ClientID        int                    `json:"clientId"`
	DoctorID        *int                   `json:"doctorId"`
	AppointmentDate string                 `json:"appointmentdate"`
	Description     string                 `json:"description"`
	Status          string                 `json:"status"`
	Client          *ClientSummaryResponse `json:"client"`
	Doctor          *DoctorSummaryResponse `json:"doctor"`
}
