package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/meselghea/teledoc-app/internal/auth"
	"github.com/meselghea/teledoc-app/internal/errors"
	"github.com/meselghea/teledoc-app/internal/model"
	"github.com/meselghea/teledoc-app/internal/service"
)

// MockProfileService is a mock implementation of service.ProfileService.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input service.UpdateProfileInput) (*model.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockProfileService) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type validatorStub struct {
	validate *validator.Validate
}

func (v *validatorStub) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// newProfileContext builds an echo context with the JWT claims the middleware
// would have placed for the given user.
func newProfileContext(method, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &validatorStub{validate: validator.New()}

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/users/me", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		UserID: userID,
		Email:  "patient@example.com",
		Role:   string(model.RolePatient),
	})
	c.Set("user", token)
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errors.Envelope {
	t.Helper()
	var env errors.Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestProfileHandler_GetMe(t *testing.T) {
	userID := uuid.New()

	t.Run("success envelope", func(t *testing.T) {
		mockSvc := new(MockProfileService)
		mockSvc.On("GetProfile", mock.Anything, userID).Return(&model.User{ID: userID, Name: "Demo Patient"}, nil)

		c, rec := newProfileContext(http.MethodGet, "", userID)
		h := NewProfileHandler(mockSvc)

		assert.NoError(t, h.GetMe(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "success", env.Status)
		assert.NotNil(t, env.Data)
	})

	t.Run("missing user maps to 404", func(t *testing.T) {
		mockSvc := new(MockProfileService)
		mockSvc.On("GetProfile", mock.Anything, userID).Return(nil, errors.ErrUserNotFound)

		c, rec := newProfileContext(http.MethodGet, "", userID)
		h := NewProfileHandler(mockSvc)

		assert.NoError(t, h.GetMe(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "fail", env.Status)
		assert.Equal(t, errors.MsgUserNotFound, env.Message)
	})

	t.Run("without claims maps to 401", func(t *testing.T) {
		mockSvc := new(MockProfileService)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewProfileHandler(mockSvc)
		assert.NoError(t, h.GetMe(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "fail", env.Status)
		assert.Equal(t, errors.MsgNotLoggedIn, env.Message)
		mockSvc.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
	})
}

func TestProfileHandler_UpdateMe(t *testing.T) {
	userID := uuid.New()

	t.Run("passes allow-listed fields through", func(t *testing.T) {
		mockSvc := new(MockProfileService)
		mockSvc.On("UpdateProfile", mock.Anything, userID, mock.MatchedBy(func(in service.UpdateProfileInput) bool {
			return in.Name != nil && *in.Name == "New Name" && in.Email == nil
		})).Return(&model.User{ID: userID, Name: "New Name"}, nil)

		c, rec := newProfileContext(http.MethodPatch, `{"name":"New Name"}`, userID)
		h := NewProfileHandler(mockSvc)

		assert.NoError(t, h.UpdateMe(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", decodeEnvelope(t, rec).Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("forbidden fields in the body are dropped", func(t *testing.T) {
		mockSvc := new(MockProfileService)
		mockSvc.On("UpdateProfile", mock.Anything, userID, mock.MatchedBy(func(in service.UpdateProfileInput) bool {
			// role and id have no place in the input; only the one
			// allow-listed field carries through.
			return in.Name != nil && *in.Name == "New Name" &&
				in.Email == nil && in.Phone == nil && in.Gender == nil &&
				in.BirthDate == nil && in.Image == nil && in.Password == nil
		})).Return(&model.User{ID: userID, Name: "New Name"}, nil)

		body := `{"name":"New Name","role":"doctor","id":"` + uuid.NewString() + `","passwordHash":"sneaky"}`
		c, rec := newProfileContext(http.MethodPatch, body, userID)
		h := NewProfileHandler(mockSvc)

		assert.NoError(t, h.UpdateMe(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("password hash is never serialized", func(t *testing.T) {
		mockSvc := new(MockProfileService)
		mockSvc.On("UpdateProfile", mock.Anything, userID, mock.Anything).Return(&model.User{
			ID:           userID,
			Name:         "Demo Patient",
			PasswordHash: "$2a$10$notforclienteyes",
		}, nil)

		c, rec := newProfileContext(http.MethodPatch, `{"name":"Demo Patient"}`, userID)
		h := NewProfileHandler(mockSvc)

		assert.NoError(t, h.UpdateMe(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "notforclienteyes")
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		mockSvc := new(MockProfileService)

		c, rec := newProfileContext(http.MethodPatch, `{"email":"not-an-email"}`, userID)
		h := NewProfileHandler(mockSvc)

		assert.NoError(t, h.UpdateMe(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "fail", decodeEnvelope(t, rec).Status)
		mockSvc.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProfileHandler_DeleteMe(t *testing.T) {
	userID := uuid.New()

	mockSvc := new(MockProfileService)
	mockSvc.On("DeleteProfile", mock.Anything, userID).Return(nil)

	c, rec := newProfileContext(http.MethodDelete, "", userID)
	h := NewProfileHandler(mockSvc)

	assert.NoError(t, h.DeleteMe(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
