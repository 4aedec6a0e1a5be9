package dto

import "time"

// Request DTOs

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Contact  string `json:"contact" validate:"required,max=255"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=doctor admin both"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	Contact  *string `json:"contact,omitempty" validate:"omitempty,max=255"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=doctor admin both"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Password == nil &&
		r.Contact == nil && r.Role == nil && r.IsActive == nil
}

// Response DTOs

type UserResponse struct {
	ID           int                       `json:"id"`
	Name         string                    `json:"name"`
	Email        string                    `json:"email"`
	Contact      string                    `json:"contact"`
	Role         string                    `json:"role"`
	IsActive     bool                      `json:"isActive"`
	CreatedAt    time.Time                 `json:"createdAt"`
	Appointments []UserAppointmentResponse `json:"appointments"`
	Enrollments  []UserEnrollmentResponse  `json:"enrollments"`
}

type UserAppointmentResponse struct {
	ID              int    `json:"id"`
	AppointmentDate string `json:"appointmentdate"`
	Description     string `json:"description"`
	Status          string `json:"status"`
}

type UserEnrollmentResponse struct {
	ID             int                     `json:"id"`
	Enroller       *int                    `json:"enroller"`
	EnrollmentDate string                  `json:"enrollmentdate"`
	Status         string                  `json:"status"`
	Program        *ProgramSummaryResponse `json:"program"`
}
