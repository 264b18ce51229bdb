package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/meselghea/teledoc-app/internal/errors"
	"github.com/meselghea/teledoc-app/internal/model"
	"github.com/meselghea/teledoc-app/internal/repository"
)

// UpdateDoctorInput carries the mutable doctor sub-profile fields; nil means
// leave unchanged.
type UpdateDoctorInput struct {
	StrNumber       *string
	Username        *string
	Specialist      *string
	ConsultationFee *decimal.Decimal
}

// DoctorService handles the doctor sub-profile.
type DoctorService interface {
	UpdateDoctor(ctx context.Context, actorID, userID uuid.UUID, input UpdateDoctorInput) (*model.Doctor, error)
}

type doctorService struct {
	doctorRepo repository.DoctorRepository
}

// NewDoctorService creates a new doctor service.
func NewDoctorService(doctorRepo repository.DoctorRepository) DoctorService {
	return &doctorService{doctorRepo: doctorRepo}
}

// UpdateDoctor applies a partial update to the caller's own doctor record.
func (s *doctorService) UpdateDoctor(ctx context.Context, actorID, userID uuid.UUID, input UpdateDoctorInput) (*model.Doctor, error) {
	if actorID != userID {
		return nil, errors.ErrNotProfileOwner
	}

	doctor, err := s.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}

	if input.StrNumber != nil {
		doctor.StrNumber = *input.StrNumber
	}
	if input.Username != nil {
		doctor.Username = *input.Username
	}
	if input.Specialist != nil {
		doctor.Specialist = *input.Specialist
	}
	if input.ConsultationFee != nil {
		doctor.ConsultationFee = *input.ConsultationFee
	}

	if err := s.doctorRepo.Update(ctx, doctor); err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}
	return doctor, nil
}
