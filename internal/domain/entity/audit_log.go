package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AuditLog records who changed which entity and how. The actor is cleared if the user is deleted.
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *int      `gorm:"index" json:"userId,omitempty"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported audit metadata value of type %T", value)
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Audit actions, one per mutation
const (
	AuditActionUserRegister = "user.register"

	AuditActionUserCreate = "user.create"
	AuditActionUserUpdate = "user.update"
	AuditActionUserDelete = "user.delete"

	AuditActionClientCreate = "client.create"
	AuditActionClientUpdate = "client.update"
	AuditActionClientDelete = "client.delete"

	AuditActionProgramCreate = "program.create"
	AuditActionProgramUpdate = "program.update"
	AuditActionProgramDelete = "program.delete"

	AuditActionEnrollmentCreate = "enrollment.create"
	AuditActionEnrollmentUpdate = "enrollment.update"
	AuditActionEnrollmentDelete = "enrollment.delete"

	AuditActionAppointmentCreate = "appointment.create"
	AuditActionAppointmentUpdate = "appointment.update"
	AuditActionAppointmentDelete = "appointment.delete"
)

var auditActions = map[string]bool{
	AuditActionUserRegister:      true,
	AuditActionUserCreate:        true,
	AuditActionUserUpdate:        true,
	AuditActionUserDelete:        true,
	AuditActionClientCreate:      true,
	AuditActionClientUpdate:      true,
	AuditActionClientDelete:      true,
	AuditActionProgramCreate:     true,
	AuditActionProgramUpdate:     true,
	AuditActionProgramDelete:     true,
	AuditActionEnrollmentCreate:  true,
	AuditActionEnrollmentUpdate:  true,
	AuditActionEnrollmentDelete:  true,
	AuditActionAppointmentCreate: true,
	AuditActionAppointmentUpdate: true,
	AuditActionAppointmentDelete: true,
}

func IsAuditAction(action string) bool {
	return auditActions[action]
}
