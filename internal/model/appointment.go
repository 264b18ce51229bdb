package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is a scheduled consultation between one patient and one doctor.
// RejectionReason is meaningful only while the status is rejected.
type Appointment struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Date            time.Time `json:"date" gorm:"type:date;not null"`
	Time            string    `json:"time" gorm:"size:8;not null"`
	Symptoms        string    `json:"symptoms" gorm:"size:512"`
	Description     string    `json:"description" gorm:"type:text"`
	RejectionReason string    `json:"rejectionReason" gorm:"size:255"`
	StatusID        uuid.UUID `json:"statusId" gorm:"type:char(36);not null;index"`
	PatientID       uuid.UUID `json:"patientId" gorm:"type:char(36);not null;index"`
	DoctorID        uuid.UUID `json:"doctorId" gorm:"type:char(36);not null;index"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Relations
	Status  *AppointmentStatus `json:"status,omitempty" gorm:"foreignKey:StatusID"`
	Patient *User              `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	Doctor  *User              `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
