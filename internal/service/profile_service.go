package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/meselghea/teledoc-app/internal/errors"
	"github.com/meselghea/teledoc-app/internal/model"
	"github.com/meselghea/teledoc-app/internal/repository"
)

// birthDateLayouts are the accepted input formats, tried in order.
var birthDateLayouts = []string{time.RFC3339, "2006-01-02"}

// UpdateProfileInput carries the allow-listed mutable profile fields. A nil
// pointer means "leave unchanged"; fields outside this struct (id, role)
// cannot be written through a profile update.
type UpdateProfileInput struct {
	Name      *string
	Email     *string
	Phone     *string
	Gender    *string
	BirthDate *string
	Image     *string
	// Password is optional and separate from the general fields: it is
	// hashed and stored only when explicitly provided.
	Password *string
}

// ProfileService handles the authenticated user's own profile.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*model.User, error)
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
}

type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

// GetProfile loads the user with the doctor sub-profile and both appointment
// collections. Both collections are fetched unconditionally; the one that does
// not match the user's role is empty.
func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByIDWithRelations(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update over the allow-listed fields and
// returns the updated record.
func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.Image != nil {
		user.Image = *input.Image
	}
	if input.BirthDate != nil {
		parsed, err := parseBirthDate(*input.BirthDate)
		if err != nil {
			return nil, errors.ErrInvalidBirthDate
		}
		user.BirthDate = &parsed
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// DeleteProfile removes the caller's own user row.
func (s *profileService) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func parseBirthDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
