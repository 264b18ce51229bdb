package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meselghea/teledoc-app/internal/model"
)

// StatusRepository defines persistence operations for the status lookup table.
type StatusRepository interface {
	FindByName(ctx context.Context, name model.StatusName) (*model.AppointmentStatus, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.AppointmentStatus, error)
	List(ctx context.Context) ([]model.AppointmentStatus, error)
	EnsureDefaults(ctx context.Context) error
}

type statusRepository struct {
	db *gorm.DB
}

// NewStatusRepository builds a GORM-backed repository.
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) FindByName(ctx context.Context, name model.StatusName) (*model.AppointmentStatus, error) {
	var status model.AppointmentStatus
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *statusRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AppointmentStatus, error) {
	var status model.AppointmentStatus
	if err := r.db.WithContext(ctx).First(&status, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *statusRepository) List(ctx context.Context) ([]model.AppointmentStatus, error) {
	var statuses []model.AppointmentStatus
	if err := r.db.WithContext(ctx).Order("name").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// EnsureDefaults inserts any missing rows of the fixed enumeration. Idempotent.
func (r *statusRepository) EnsureDefaults(ctx context.Context) error {
	for _, name := range model.AllStatusNames() {
		status := model.AppointmentStatus{Name: name}
		err := r.db.WithContext(ctx).
			Where("name = ?", name).
			FirstOrCreate(&status).Error
		if err != nil {
			return err
		}
	}
	return nil
}
