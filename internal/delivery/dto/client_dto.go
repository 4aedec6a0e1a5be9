package dto

// Request DTOs

type CreateClientRequest struct {
	FullName string `json:"fullname" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"required,min=7,max=20"`
	Address  string `json:"address" validate:"required,max=255"`
	DOB      string `json:"dob" validate:"required,date"`
	Gender   string `json:"gender,omitempty" validate:"omitempty,oneof=male female unspecified"`
}

type UpdateClientRequest struct {
	FullName *string `json:"fullname,omitempty" validate:"omitempty,min=2,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=255"`
	DOB      *string `json:"dob,omitempty" validate:"omitempty,date"`
	Gender   *string `json:"gender,omitempty" validate:"omitempty,oneof=male female unspecified"`
}

func (r *UpdateClientRequest) IsEmpty() bool {
	return r.FullName == nil && r.Email == nil && r.Phone == nil &&
		r.Address == nil && r.DOB == nil && r.Gender == nil
}

// Response DTOs

type ClientResponse struct {
	ID           int                         `json:"id"`
	FullName     string                      `json:"fullname"`
	Email        string                      `json:"email"`
	Phone        string                      `json:"phone"`
	Address      string                      `json:"address"`
	DOB          string                      `json:"dob"`
	Enrollments  []ClientEnrollmentResponse  `json:"enrollments"`
	Appointments []ClientAppointmentResponse `json:"appointments"`
}

type ClientEnrollmentResponse struct {
	ID             int                     `json:"id"`
	EnrollmentDate string                  `json:"enrollmentdate"`
	Status         string                  `json:"status"`
	Program        *ProgramSummaryResponse `json:"program"`
}

type ClientAppointmentResponse struct {
	ID              int                    `json:"id"`
	AppointmentDate string                 `json:"appointmentdate"`
	Description     string                 `json:"description"`
	Status          string                 `json:"status"`
	Doctor          *DoctorSummaryResponse `json:"doctor"`
}
