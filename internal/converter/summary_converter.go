package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

func boolValue(b *bool) bool {
	return b != nil && *b
}

func programToSummary(program *entity.Program) *dto.ProgramSummaryResponse {
	if program == nil {
		return nil
	}

	return &dto.ProgramSummaryResponse{
		Name:        program.Name,
		Description: program.Description,
		IsActive:    boolValue(program.IsActive),
		StartDate:   entity.FormatDate(program.StartDate),
		EndDate:     entity.FormatDate(program.EndDate),
	}
}

func clientToSummary(client *entity.Client) *dto.ClientSummaryResponse {
	if client == nil {
		return nil
	}

	return &dto.ClientSummaryResponse{
		ID:       client.ID,
		FullName: client.FullName,
		Email:    client.Email,
		Phone:    client.Phone,
	}
}

func doctorToSummary(user *entity.User) *dto.DoctorSummaryResponse {
	if user == nil {
		return nil
	}

	return &dto.DoctorSummaryResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Contact: user.Contact,
		Role:    string(user.Role),
	}
}
