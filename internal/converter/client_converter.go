package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

// ClientToResponse converts a Client loaded through entity.ClientDetail to its response DTO
func ClientToResponse(client *entity.Client) *dto.ClientResponse {
	if client == nil {
		return nil
	}

	response := &dto.ClientResponse{
		ID:           client.ID,
		FullName:     client.FullName,
		Email:        client.Email,
		Phone:        client.Phone,
		Address:      client.Address,
		DOB:          entity.FormatDate(client.DateOfBirth),
		Enrollments:  make([]dto.ClientEnrollmentResponse, len(client.Enrollments)),
		Appointments: make([]dto.ClientAppointmentResponse, len(client.Appointments)),
	}

	for i, enrollment := range client.Enrollments {
		response.Enrollments[i] = dto.ClientEnrollmentResponse{
			ID:             enrollment.ID,
			EnrollmentDate: entity.FormatDate(enrollment.EnrollmentDate),
			Status:         string(enrollment.Status),
			Program:        programToSummary(enrollment.Program),
		}
	}

	for i, appointment := range client.Appointments {
		response.Appointments[i] = dto.ClientAppointmentResponse{
			ID:              appointment.ID,
			AppointmentDate: entity.FormatDate(appointment.AppointmentDate),
			Description:     appointment.Description,
			Status:          string(appointment.Status),
			Doctor:          doctorToSummary(appointment.Doctor),
		}
	}

	return response
}

// ClientsToResponses converts a slice of Client entities; an empty input yields an empty, non-nil slice
func ClientsToResponses(clients []entity.Client) []dto.ClientResponse {
	responses := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		responses[i] = *ClientToResponse(&clients[i])
	}
	return responses
}
