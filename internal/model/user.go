package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role distinguishes the two kinds of users in the system.
type Role string

const (
	// RolePatient is a user who books appointments.
	RolePatient Role = "patient"
	// RoleDoctor is a user who receives and decides appointments.
	RoleDoctor Role = "doctor"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RolePatient || r == RoleDoctor
}

// User is an identity record. A doctor-role user owns a Doctor sub-profile;
// the two appointment collections are disjoint by role.
type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone        string         `json:"phone" gorm:"size:32"`
	Gender       string         `json:"gender" gorm:"size:1"`
	BirthDate    *time.Time     `json:"birthDate"`
	Role         Role           `json:"role" gorm:"size:16;default:'patient';index"`
	Image        string         `json:"image" gorm:"size:512"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Doctor              *Doctor       `json:"doctor,omitempty" gorm:"foreignKey:UserID"`
	PatientAppointments []Appointment `json:"patientAppointments,omitempty" gorm:"foreignKey:PatientID"`
	DoctorAppointments  []Appointment `json:"doctorAppointments,omitempty" gorm:"foreignKey:DoctorID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
