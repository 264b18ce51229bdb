package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meselghea/teledoc-app/internal/model"
)

// DoctorRepository defines persistence operations for doctor sub-profiles.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Doctor, error)
	Update(ctx context.Context, doctor *model.Doctor) error
}

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository builds a GORM-backed repository.
func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	return r.db.WithContext(ctx).Save(doctor).Error
}
