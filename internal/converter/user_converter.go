package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// The password hash is never copied.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Contact:      user.Contact,
		Role:         string(user.Role),
		IsActive:     user.Active(),
		CreatedAt:    user.CreatedAt,
		Appointments: make([]dto.UserAppointmentResponse, len(user.Appointments)),
		Enrollments:  make([]dto.UserEnrollmentResponse, len(user.Enrollments)),
	}

	for i, appointment := range user.Appointments {
		response.Appointments[i] = dto.UserAppointmentResponse{
			ID:              appointment.ID,
			AppointmentDate: entity.FormatDate(appointment.AppointmentDate),
			Description:     appointment.Description,
			Status:          string(appointment.Status),
		}
	}

	for i, enrollment := range user.Enrollments {
		response.Enrollments[i] = dto.UserEnrollmentResponse{
			ID:             enrollment.ID,
			Enroller:       enrollment.EnrollerID,
			EnrollmentDate: entity.FormatDate(enrollment.EnrollmentDate),
			Status:         string(enrollment.Status),
			Program:        programToSummary(enrollment.Program),
		}
	}

	return response
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

// UserToLoginResponse builds the login payload around a freshly signed token
func UserToLoginResponse(user *entity.User, token string) *dto.LoginResponse {
	return &dto.LoginResponse{
		Msg:   "Login successful",
		Token: token,
		User: dto.LoginUser{
			ID:    user.ID,
			Email: user.Email,
			Role:  string(user.Role),
			Name:  user.Name,
		},
	}
}
