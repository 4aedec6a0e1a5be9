package handler

import (
	"errors"
	"net/http"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
	"clinic-management/pkg/validator"
)

type EnrollmentHandler struct {
	enrollmentUsecase usecase.EnrollmentUsecase
	validator         *validator.CustomValidator
}

func NewEnrollmentHandler(enrollmentUsecase usecase.EnrollmentUsecase, validator *validator.CustomValidator) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentUsecase: enrollmentUsecase,
		validator:         validator,
	}
}

// CreateEnrollment enrolls a client; the enroller defaults to the authenticated user
func (h *EnrollmentHandler) CreateEnrollment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEnrollmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	enrollment, err := h.enrollmentUsecase.CreateEnrollment(r.Context(), &req)
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrEnrollmentReferenceNotFound):
			response.BadRequest(w, "Referenced client, program or enroller does not exist")
		default:
			response.InternalServerError(w, "Failed to create enrollment", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Enrollment created successfully", enrollment)
}

func (h *EnrollmentHandler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid enrollment ID")
		return
	}

	enrollment, err := h.enrollmentUsecase.GetEnrollment(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrEnrollmentNotFound) {
			response.NotFound(w, "Enrollment not found")
			return
		}
		response.InternalServerError(w, "Failed to get enrollment", err)
		return
	}

	response.Success(w, http.StatusOK, "Enrollment retrieved successfully", enrollment)
}

func (h *EnrollmentHandler) GetAllEnrollments(w http.ResponseWriter, r *http.Request) {
	enrollments, err := h.enrollmentUsecase.GetAllEnrollments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get enrollments", err)
		return
	}

	response.Success(w, http.StatusOK, "Enrollments retrieved successfully", enrollments)
}

func (h *EnrollmentHandler) UpdateEnrollment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid enrollment ID")
		return
	}

	var req dto.UpdateEnrollmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	if req.IsEmpty() {
		response.BadRequest(w, "No fields to update")
		return
	}

	enrollment, err := h.enrollmentUsecase.UpdateEnrollment(r.Context(), id, &req)
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrEnrollmentNotFound):
			response.NotFound(w, "Enrollment not found")
		case errors.Is(err, usecase.ErrEnrollmentReferenceNotFound):
			response.BadRequest(w, "Referenced client, program or enroller does not exist")
		default:
			response.InternalServerError(w, "Failed to update enrollment", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Enrollment updated successfully", enrollment)
}

func (h *EnrollmentHandler) DeleteEnrollment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid enrollment ID")
		return
	}

	enrollment, err := h.enrollmentUsecase.DeleteEnrollment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEnrollmentNotFound):
			response.NotFound(w, "Enrollment not found")
		default:
			response.InternalServerError(w, "Failed to delete enrollment", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Enrollment deleted successfully", enrollment)
}

func (h *EnrollmentHandler) GetEnrollmentsByClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid client ID")
		return
	}

	enrollments, err := h.enrollmentUsecase.GetEnrollmentsByClient(r.Context(), clientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get enrollments", err)
		return
	}

	response.Success(w, http.StatusOK, "Enrollments retrieved successfully", enrollments)
}

func (h *EnrollmentHandler) GetEnrollmentsByProgram(w http.ResponseWriter, r *http.Request) {
	programID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid program ID")
		return
	}

	enrollments, err := h.enrollmentUsecase.GetEnrollmentsByProgram(r.Context(), programID)
	if err != nil {
		response.InternalServerError(w, "Failed to get enrollments", err)
		return
	}

	response.Success(w, http.StatusOK, "Enrollments retrieved successfully", enrollments)
}
