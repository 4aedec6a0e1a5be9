package entity

import (
	"time"
)

type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnspecified:
		return true
	}
	return false
}

// Client is a patient record. Deleting a client removes its enrollments and appointments.
type Client struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName    string    `gorm:"type:varchar(255);not null" json:"fullname"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"phone"`
	Address     string    `gorm:"type:varchar(255);not null" json:"address"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"dob"`
	Gender      Gender    `gorm:"type:varchar(20);not null;default:'unspecified';check:gender IN ('male','female','unspecified')" json:"gender"`

	// Relationships
	Enrollments  []Enrollment  `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"enrollments,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
}

func (Client) TableName() string {
	return "clients"
}
