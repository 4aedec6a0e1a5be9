package handler

import (
	"errors"
	"net/http"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
	"clinic-management/pkg/validator"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	validator       *validator.CustomValidator
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, validator *validator.CustomValidator) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		validator:       validator,
	}
}

// GetAuditLogs lists the trail, optionally narrowed by the entity, entityId,
// action and userId query parameters.
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	query, err := parseAuditLogQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	auditLogs, err := h.auditLogUsecase.GetAuditLogs(r.Context(), query)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAuditFilter) {
			response.BadRequest(w, "entityId needs entity, and action must name a recorded action")
			return
		}
		response.InternalServerError(w, "Failed to get audit logs", err)
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", auditLogs)
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log", err)
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

func parseAuditLogQuery(r *http.Request) (*dto.AuditLogQuery, error) {
	values := r.URL.Query()

	entityID, err := parseOptionalID(values.Get("entityId"))
	if err != nil {
		return nil, errors.New("entityId must be a positive integer")
	}
	userID, err := parseOptionalID(values.Get("userId"))
	if err != nil {
		return nil, errors.New("userId must be a positive integer")
	}

	return &dto.AuditLogQuery{
		Entity:   values.Get("entity"),
		EntityID: entityID,
		Action:   values.Get("action"),
		UserID:   userID,
	}, nil
}
