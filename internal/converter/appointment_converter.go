package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		ClientID:        appointment.ClientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: entity.FormatDate(appointment.AppointmentDate),
		Description:     appointment.Description,
		Status:          string(appointment.Status),
		Client:          clientToSummary(appointment.Client),
		Doctor:          doctorToSummary(appointment.Doctor),
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
