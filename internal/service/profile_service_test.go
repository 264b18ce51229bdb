package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/meselghea/teledoc-app/internal/errors"
	"github.com/meselghea/teledoc-app/internal/model"
)

func strPtr(s string) *string { return &s }

func TestProfileService_GetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("returns user with relations", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByIDWithRelations", mock.Anything, userID).Return(&model.User{
			ID:   userID,
			Name: "Test User",
			Role: model.RoleDoctor,
			DoctorAppointments: []model.Appointment{
				{Status: &model.AppointmentStatus{Name: model.StatusPending}},
			},
		}, nil)

		svc := NewProfileService(mockRepo)
		user, err := svc.GetProfile(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Len(t, user.DoctorAppointments, 1)
		assert.Empty(t, user.PatientAppointments)
		mockRepo.AssertExpectations(t)
	})

	t.Run("vanished user maps to user not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByIDWithRelations", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProfileService(mockRepo)
		user, err := svc.GetProfile(context.Background(), userID)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	userID := uuid.New()
	existingHash, _ := bcrypt.GenerateFromPassword([]byte("old-password"), 10)

	newUser := func() *model.User {
		return &model.User{
			ID:           userID,
			Name:         "Before",
			Email:        "before@example.com",
			Role:         model.RolePatient,
			PasswordHash: string(existingHash),
		}
	}

	t.Run("applies allow-listed fields", func(t *testing.T) {
		user := newUser()
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(user, nil)
		mockRepo.On("Update", mock.Anything, user).Return(nil)

		svc := NewProfileService(mockRepo)
		updated, err := svc.UpdateProfile(context.Background(), userID, UpdateProfileInput{
			Name:      strPtr("After"),
			Phone:     strPtr("0812345678"),
			BirthDate: strPtr("1990-04-12"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "After", updated.Name)
		assert.Equal(t, "0812345678", updated.Phone)
		assert.Equal(t, "before@example.com", updated.Email)
		if assert.NotNil(t, updated.BirthDate) {
			assert.Equal(t, 1990, updated.BirthDate.Year())
			assert.Equal(t, time.April, updated.BirthDate.Month())
		}
		mockRepo.AssertExpectations(t)
	})

	t.Run("password hashed only when provided", func(t *testing.T) {
		user := newUser()
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(user, nil)
		mockRepo.On("Update", mock.Anything, user).Return(nil)

		svc := NewProfileService(mockRepo)
		updated, err := svc.UpdateProfile(context.Background(), userID, UpdateProfileInput{
			Password: strPtr("new-password"),
		})

		assert.NoError(t, err)
		assert.NotEqual(t, "new-password", updated.PasswordHash)
		assert.NotEqual(t, string(existingHash), updated.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-password")))
	})

	t.Run("password untouched when absent", func(t *testing.T) {
		user := newUser()
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(user, nil)
		mockRepo.On("Update", mock.Anything, user).Return(nil)

		svc := NewProfileService(mockRepo)
		updated, err := svc.UpdateProfile(context.Background(), userID, UpdateProfileInput{
			Name: strPtr("After"),
		})

		assert.NoError(t, err)
		assert.Equal(t, string(existingHash), updated.PasswordHash)
	})

	t.Run("unparseable birth date is rejected", func(t *testing.T) {
		user := newUser()
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(user, nil)

		svc := NewProfileService(mockRepo)
		updated, err := svc.UpdateProfile(context.Background(), userID, UpdateProfileInput{
			BirthDate: strPtr("not-a-date"),
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errors.ErrInvalidBirthDate)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("vanished user maps to user not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProfileService(mockRepo)
		updated, err := svc.UpdateProfile(context.Background(), userID, UpdateProfileInput{
			Name: strPtr("After"),
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})
}

func TestProfileService_DeleteProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes own row", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, userID).Return(nil)

		svc := NewProfileService(mockRepo)
		assert.NoError(t, svc.DeleteProfile(context.Background(), userID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("vanished user maps to user not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, userID).Return(gorm.ErrRecordNotFound)

		svc := NewProfileService(mockRepo)
		assert.ErrorIs(t, svc.DeleteProfile(context.Background(), userID), errors.ErrUserNotFound)
	})
}
