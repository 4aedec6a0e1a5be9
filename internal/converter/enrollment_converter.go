package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

func EnrollmentToResponse(enrollment *entity.Enrollment) *dto.EnrollmentResponse {
	if enrollment == nil {
		return nil
	}

	return &dto.EnrollmentResponse{
		ID:             enrollment.ID,
		EnrollmentDate: entity.FormatDate(enrollment.EnrollmentDate),
		Status:         string(enrollment.Status),
		Client:         clientToSummary(enrollment.Client),
		Program:        ProgramToResponse(enrollment.Program),
	}
}

func EnrollmentsToResponses(enrollments []entity.Enrollment) []dto.EnrollmentResponse {
	responses := make([]dto.EnrollmentResponse, len(enrollments))
	for i := range enrollments {
		responses[i] = *EnrollmentToResponse(&enrollments[i])
	}
	return responses
}
