package handler

import (
	"errors"
	"net/http"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
	"clinic-management/pkg/validator"
)

type ClientHandler struct {
	clientUsecase usecase.ClientUsecase
	validator     *validator.CustomValidator
}

func NewClientHandler(clientUsecase usecase.ClientUsecase, validator *validator.CustomValidator) *ClientHandler {
	return &ClientHandler{
		clientUsecase: clientUsecase,
		validator:     validator,
	}
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	client, err := h.clientUsecase.CreateClient(r.Context(), &req)
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrClientEmailExists):
			response.Conflict(w, "Client email already exists")
		case errors.Is(err, usecase.ErrClientPhoneExists):
			response.Conflict(w, "Client phone already exists")
		default:
			response.InternalServerError(w, "Failed to create client", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Client created successfully", client)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid client ID")
		return
	}

	client, err := h.clientUsecase.GetClient(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrClientNotFound) {
			response.NotFound(w, "Client not found")
			return
		}
		response.InternalServerError(w, "Failed to get client", err)
		return
	}

	response.Success(w, http.StatusOK, "Client retrieved successfully", client)
}

func (h *ClientHandler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientUsecase.GetAllClients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get clients", err)
		return
	}

	response.Success(w, http.StatusOK, "Clients retrieved successfully", clients)
}

// UpdateClient applies a partial update; only the supplied fields change
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid client ID")
		return
	}

	var req dto.UpdateClientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	if req.IsEmpty() {
		response.BadRequest(w, "No fields to update")
		return
	}

	client, err := h.clientUsecase.UpdateClient(r.Context(), id, &req)
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrClientNotFound):
			response.NotFound(w, "Client not found")
		case errors.Is(err, usecase.ErrClientEmailExists):
			response.Conflict(w, "Client email already exists")
		case errors.Is(err, usecase.ErrClientPhoneExists):
			response.Conflict(w, "Client phone already exists")
		default:
			response.InternalServerError(w, "Failed to update client", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Client updated successfully", client)
}

// DeleteClient removes the client together with their enrollments and appointments
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid client ID")
		return
	}

	client, err := h.clientUsecase.DeleteClient(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrClientNotFound):
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to delete client", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Client deleted successfully", client)
}
