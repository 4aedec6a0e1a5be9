package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

func ProgramToResponse(program *entity.Program) *dto.ProgramResponse {
	if program == nil {
		return nil
	}

	return &dto.ProgramResponse{
		ID:          program.ID,
		Name:        program.Name,
		Description: program.Description,
		IsActive:    boolValue(program.IsActive),
		StartDate:   entity.FormatDate(program.StartDate),
		EndDate:     entity.FormatDate(program.EndDate),
	}
}

func ProgramsToResponses(programs []entity.Program) []dto.ProgramResponse {
	responses := make([]dto.ProgramResponse, len(programs))
	for i := range programs {
		responses[i] = *ProgramToResponse(&programs[i])
	}
	return responses
}
