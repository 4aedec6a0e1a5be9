package handler

import (
	"errors"
	"net/http"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
	"clinic-management/pkg/validator"
)

type ProgramHandler struct {
	programUsecase usecase.ProgramUsecase
	validator      *validator.CustomValidator
}

func NewProgramHandler(programUsecase usecase.ProgramUsecase, validator *validator.CustomValidator) *ProgramHandler {
	return &ProgramHandler{
		programUsecase: programUsecase,
		validator:      validator,
	}
}

func (h *ProgramHandler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProgramRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	program, err := h.programUsecase.CreateProgram(r.Context(), &req)
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to create program", err)
		return
	}

	response.Success(w, http.StatusCreated, "Program created successfully", program)
}

func (h *ProgramHandler) GetProgram(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid program ID")
		return
	}

	program, err := h.programUsecase.GetProgram(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProgramNotFound) {
			response.NotFound(w, "Program not found")
			return
		}
		response.InternalServerError(w, "Failed to get program", err)
		return
	}

	response.Success(w, http.StatusOK, "Program retrieved successfully", program)
}

func (h *ProgramHandler) GetAllPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.programUsecase.GetAllPrograms(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get programs", err)
		return
	}

	response.Success(w, http.StatusOK, "Programs retrieved successfully", programs)
}

func (h *ProgramHandler) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid program ID")
		return
	}

	var req dto.UpdateProgramRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	if req.IsEmpty() {
		response.BadRequest(w, "No fields to update")
		return
	}

	program, err := h.programUsecase.UpdateProgram(r.Context(), id, &req)
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrProgramNotFound):
			response.NotFound(w, "Program not found")
		default:
			response.InternalServerError(w, "Failed to update program", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Program updated successfully", program)
}

// DeleteProgram is refused while any enrollment references the program
func (h *ProgramHandler) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid program ID")
		return
	}

	program, err := h.programUsecase.DeleteProgram(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProgramNotFound):
			response.NotFound(w, "Program not found")
		case errors.Is(err, usecase.ErrProgramInUse):
			response.Conflict(w, "Program still has enrollments")
		default:
			response.InternalServerError(w, "Failed to delete program", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Program deleted successfully", program)
}
