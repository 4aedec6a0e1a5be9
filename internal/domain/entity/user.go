package entity

import (
	"time"
)

// User is a clinic practitioner and the authentication principal
type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Contact   string    `gorm:"type:varchar(255);not null" json:"contact"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'doctor';check:role IN ('doctor','admin','both')" json:"role"`
	IsActive  *bool     `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID;constraint:OnDelete:SET NULL" json:"appointments,omitempty"`
	Enrollments  []Enrollment  `gorm:"foreignKey:EnrollerID;constraint:OnDelete:SET NULL" json:"enrollments,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Active treats a missing flag as active, matching the column default
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}
