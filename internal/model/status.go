package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusName names an appointment state in the lookup table.
type StatusName string

const (
	// StatusPending is the initial state of every appointment.
	StatusPending StatusName = "pending"
	// StatusAccepted is the terminal accepted state.
	StatusAccepted StatusName = "accepted"
	// StatusRejected is the terminal rejected state.
	StatusRejected StatusName = "rejected"
)

// AllStatusNames lists every row the lookup table must hold.
func AllStatusNames() []StatusName {
	return []StatusName{StatusPending, StatusAccepted, StatusRejected}
}

// AppointmentStatus is the fixed reference table appointments point at.
type AppointmentStatus struct {
	ID   uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name StatusName `json:"name" gorm:"size:32;uniqueIndex;not null"`
}

// BeforeCreate sets UUID before creating the record.
func (s *AppointmentStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// RejectionReasons is the fixed list a doctor must choose from when rejecting.
var RejectionReasons = []string{
	"Full booked at desired time",
	"Doctor not on duty",
	"Out of doctor expertise",
	"Unavailable",
}

// ValidRejectionReason reports whether reason is one of RejectionReasons.
func ValidRejectionReason(reason string) bool {
	for _, r := range RejectionReasons {
		if r == reason {
			return true
		}
	}
	return false
}
