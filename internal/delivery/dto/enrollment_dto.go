package dto

// Request DTOs

// CreateEnrollmentRequest leaves Enroller optional; the authenticated user is recorded when it is omitted.
type CreateEnrollmentRequest struct {
	ClientID       int    `json:"clientId" validate:"required,gt=0"`
	ProgramID      int    `json:"programId" validate:"required,gt=0"`
	EnrollmentDate string `json:"enrollmentdate" validate:"required,date"`
	Status         string `json:"status,omitempty" validate:"omitempty,oneof=active completed pending"`
	Enroller       *int   `json:"enroller,omitempty" validate:"omitempty,gt=0"`
}

type UpdateEnrollmentRequest struct {
	ClientID       *int    `json:"clientId,omitempty" validate:"omitempty,gt=0"`
	ProgramID      *int    `json:"programId,omitempty" validate:"omitempty,gt=0"`
	EnrollmentDate *string `json:"enrollmentdate,omitempty" validate:"omitempty,date"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=active completed pending"`
	Enroller       *int    `json:"enroller,omitempty" validate:"omitempty,gt=0"`
}

func (r *UpdateEnrollmentRequest) IsEmpty() bool {
	return r.ClientID == nil && r.ProgramID == nil && r.EnrollmentDate == nil &&
		r.Status == nil && r.Enroller == nil
}

// Response DTOs

type EnrollmentResponse struct {
	ID             int                    `json:"id"`
	EnrollmentDate string                 `json:"enrollmentdate"`
	Status         string                 `json:"status"`
	Client         *ClientSummaryResponse `json:"client"`
	Program        *ProgramResponse       `json:"program"`
}
