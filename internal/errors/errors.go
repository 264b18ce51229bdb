package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotLoggedIn is returned when no valid session accompanies the request.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrUserNotFound is returned when the referenced user row no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrAppointmentNotFound is returned when an appointment is not found.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrStatusNotFound is returned when a status name has no lookup row.
	ErrStatusNotFound = errors.New("unknown appointment status")
	// ErrDoctorNotFound is returned when a doctor sub-profile is not found.
	ErrDoctorNotFound = errors.New("doctor profile not found")
	// ErrNotAppointmentDoctor is returned when someone other than the
	// appointment's doctor attempts a status change.
	ErrNotAppointmentDoctor = errors.New("only the appointed doctor may change this appointment")
	// ErrNotAppointmentParticipant is returned when someone who is neither the
	// patient nor the doctor reads an appointment.
	ErrNotAppointmentParticipant = errors.New("only the appointment's patient or doctor may view it")
	// ErrNotProfileOwner is returned when a user tries to edit a doctor
	// sub-profile that is not their own.
	ErrNotProfileOwner = errors.New("you may only update your own profile")
	// ErrAppointmentDecided is returned on a transition out of a terminal state.
	ErrAppointmentDecided = errors.New("appointment has already been decided")
	// ErrRejectionReasonRequired is returned when a rejection carries no reason
	// from the fixed list.
	ErrRejectionReasonRequired = errors.New("rejection requires a reason from the provided list")
	// ErrInvalidStatus is returned when the requested target state is not a
	// legal transition target.
	ErrInvalidStatus = errors.New("invalid target status")
	// ErrInvalidBirthDate is returned when a birth date cannot be parsed.
	ErrInvalidBirthDate = errors.New("invalid birth date")
)

// Wire messages. The user-not-found text is part of the published contract.
const (
	MsgNotLoggedIn  = "You are not logged in, please provide a token to gain access"
	MsgUserNotFound = "No User with the Provided ID Found"
	MsgInternal     = "An error occurred while processing your request."
)

// Envelope is the uniform JSON wrapper returned by every API operation:
// status is "success", "fail" (4xx) or "error" (5xx).
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// HTTPError carries the status code and envelope fields for one failure.
type HTTPError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, status, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Status:     status,
		Message:    message,
	}
}

// Envelope converts an HTTPError to its wire envelope.
func (e *HTTPError) Envelope() Envelope {
	return Envelope{
		Status:  e.Status,
		Message: e.Message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unrecognized errors map
// to a generic 500 so internal detail never reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotLoggedIn):
		return NewHTTPError(http.StatusUnauthorized, "fail", MsgNotLoggedIn)
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, "fail", MsgUserNotFound)
	case errors.Is(err, ErrAppointmentNotFound):
		return NewHTTPError(http.StatusNotFound, "fail", err.Error())
	case errors.Is(err, ErrDoctorNotFound):
		return NewHTTPError(http.StatusNotFound, "fail", err.Error())
	case errors.Is(err, ErrStatusNotFound):
		return NewHTTPError(http.StatusBadRequest, "fail", err.Error())
	case errors.Is(err, ErrNotAppointmentDoctor):
		return NewHTTPError(http.StatusForbidden, "fail", err.Error())
	case errors.Is(err, ErrNotAppointmentParticipant):
		return NewHTTPError(http.StatusForbidden, "fail", err.Error())
	case errors.Is(err, ErrNotProfileOwner):
		return NewHTTPError(http.StatusForbidden, "fail", err.Error())
	case errors.Is(err, ErrAppointmentDecided):
		return NewHTTPError(http.StatusConflict, "fail", err.Error())
	case errors.Is(err, ErrRejectionReasonRequired):
		return NewHTTPError(http.StatusBadRequest, "fail", err.Error())
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, "fail", err.Error())
	case errors.Is(err, ErrInvalidBirthDate):
		return NewHTTPError(http.StatusBadRequest, "fail", err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "error", MsgInternal)
	}
}
