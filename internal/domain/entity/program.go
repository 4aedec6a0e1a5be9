package entity

import (
	"time"
)

// Program is a care program clients can be enrolled in.
// It cannot be deleted while enrollments still reference it.
type Program struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	IsActive    *bool     `gorm:"not null;default:true" json:"isActive"`
	StartDate   time.Time `gorm:"type:date;not null" json:"startdate"`
	EndDate     time.Time `gorm:"type:date;not null" json:"enddate"`

	// Relationships
	Enrollments []Enrollment `gorm:"foreignKey:ProgramID;constraint:OnDelete:RESTRICT" json:"enrollments,omitempty"`
}

func (Program) TableName() string {
	return "programs"
}
