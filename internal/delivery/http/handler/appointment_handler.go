package handler

import (
	"errors"
	"net/http"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
	"clinic-management/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// CreateAppointment books a visit; new appointments start as scheduled
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrAppointmentReferenceNotFound):
			response.BadRequest(w, "Referenced client or doctor does not exist")
		default:
			response.InternalServerError(w, "Failed to create appointment", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment", err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments", err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	if req.IsEmpty() {
		response.BadRequest(w, "No fields to update")
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrAppointmentReferenceNotFound):
			response.BadRequest(w, "Referenced client or doctor does not exist")
		default:
			response.InternalServerError(w, "Failed to update appointment", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.DeleteAppointment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", appointment)
}

// GetAppointmentsByClient lists a client's appointments; an unknown client yields []
func (h *AppointmentHandler) GetAppointmentsByClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid client ID")
		return
	}

	appointments, err := h.appointmentUsecase.GetAppointmentsByClient(r.Context(), clientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments", err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointmentsByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	appointments, err := h.appointmentUsecase.GetAppointmentsByDoctor(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments", err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
