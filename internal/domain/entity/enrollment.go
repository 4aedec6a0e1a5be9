package entity

import (
	"time"
)

// EnrollmentStatus represents the state of a client's program enrollment
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusPending   EnrollmentStatus = "pending"
)

func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case EnrollmentStatusActive, EnrollmentStatusCompleted, EnrollmentStatusPending:
		return true
	}
	return false
}

// Enrollment links a client to a program. EnrollerID is the user who enrolled them.
type Enrollment struct {
	ID             int              `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID       int              `gorm:"not null;index" json:"clientId"`
	ProgramID      int              `gorm:"not null;index" json:"programId"`
	Status         EnrollmentStatus `gorm:"type:varchar(20);not null;default:'pending';check:status IN ('active','completed','pending')" json:"status"`
	EnrollerID     *int             `gorm:"index" json:"enroller"`
	EnrollmentDate time.Time        `gorm:"type:date;not null" json:"enrollmentdate"`

	// Relationships
	Client   *Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Program  *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Enroller *User    `gorm:"foreignKey:EnrollerID" json:"-"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
