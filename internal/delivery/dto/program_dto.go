package dto

// Request DTOs

type CreateProgramRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	IsActive    *bool  `json:"isActive,omitempty"`
	StartDate   string `json:"startdate" validate:"required,date"`
	EndDate     string `json:"enddate" validate:"required,date"`
}

type UpdateProgramRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
	StartDate   *string `json:"startdate,omitempty" validate:"omitempty,date"`
	EndDate     *string `json:"enddate,omitempty" validate:"omitempty,date"`
}

func (r *UpdateProgramRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.IsActive == nil &&
		r.StartDate == nil && r.EndDate == nil
}

// Response DTOs

type ProgramResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	StartDate   string `json:"startdate"`
	EndDate     string `json:"enddate"`
}
