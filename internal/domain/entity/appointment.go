package entity

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Appointment is a visit of a client with a doctor. DoctorID is cleared when the doctor is deleted.
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID        int               `gorm:"not null;index" json:"clientId"`
	DoctorID        *int              `gorm:"index" json:"doctorId"`
	AppointmentDate time.Time         `gorm:"type:date;not null" json:"appointmentdate"`
	Description     string            `gorm:"type:text;not null" json:"description"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';check:status IN ('scheduled','completed','cancelled','no-show')" json:"status"`

	// Relationships
	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Doctor *User   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

