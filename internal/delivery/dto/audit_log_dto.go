package dto

import (
	"time"

	"clinic-management/internal/domain/entity"
)

// Request DTOs

// AuditLogQuery is read from the query string of GET /audit-logs. Action is
// either a full action (client.update) or, together with Entity, a verb.
type AuditLogQuery struct {
	Entity   string `json:"entity" validate:"omitempty,oneof=user client program enrollment appointment"`
	EntityID int    `json:"entityId" validate:"omitempty,gt=0"`
	Action   string `json:"action" validate:"omitempty,max=100"`
	UserID   int    `json:"userId" validate:"omitempty,gt=0"`
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64               `json:"id"`
	User      *AuditActorResponse `json:"user"`
	Action    string              `json:"action"`
	Metadata  entity.JSON         `json:"metadata"`
	CreatedAt time.Time           `json:"createdAt"`
}

type AuditActorResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
