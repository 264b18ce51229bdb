package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meselghea/teledoc-app/internal/cache"
	"github.com/meselghea/teledoc-app/internal/errors"
	"github.com/meselghea/teledoc-app/internal/model"
	"github.com/meselghea/teledoc-app/internal/repository"
)

// statusCacheTTL bounds the lifetime of an in-flight status entry so a crash
// between the optimistic write and its cleanup cannot pin a stale value.
const statusCacheTTL = time.Minute

// readableDateLayout is the long-form date shown on appointment cards.
const readableDateLayout = "January 2, 2006"

// statusCache is the slice of the cache the service needs. *cache.Client
// satisfies it.
type statusCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// PatientInfo is the patient's public slice shown on a card.
type PatientInfo struct {
	Name      string     `json:"name"`
	Gender    string     `json:"gender"`
	BirthDate *time.Time `json:"birthDate"`
	Image     string     `json:"image"`
}

// AppointmentCard is one appointment as rendered on the doctor's decision
// card: patient public info, a long-form readable date, and the current
// status name.
type AppointmentCard struct {
	ID              uuid.UUID        `json:"id"`
	Patient         PatientInfo      `json:"patient"`
	Date            time.Time        `json:"date"`
	ReadableDate    string           `json:"readableDate"`
	Time            string           `json:"time"`
	Symptoms        string           `json:"symptoms"`
	Description     string           `json:"description"`
	Status          model.StatusName `json:"status"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
}

// AppointmentService handles appointment reads and status transitions.
type AppointmentService interface {
	GetAppointment(ctx context.Context, id, actorID uuid.UUID) (*AppointmentCard, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]AppointmentCard, error)
	ChangeStatus(ctx context.Context, id, actorID uuid.UUID, target model.StatusName, rejectionReason string) (*AppointmentCard, error)
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	statusRepo      repository.StatusRepository
	cache           statusCache
}

// NewAppointmentService creates a new appointment service.
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	statusRepo repository.StatusRepository,
	cache statusCache,
) AppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		statusRepo:      statusRepo,
		cache:           cache,
	}
}

// GetAppointment returns one card to the appointment's patient or doctor;
// anyone else is refused. An in-flight cache entry, when present, overlays the
// stored status; once a transition is confirmed the entry is gone and the
// database row is the sole source of truth.
func (s *appointmentService) GetAppointment(ctx context.Context, id, actorID uuid.UUID) (*AppointmentCard, error) {
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}

	if actorID != appointment.PatientID && actorID != appointment.DoctorID {
		return nil, errors.ErrNotAppointmentParticipant
	}

	card := s.buildCard(appointment)
	if data, _ := s.cache.Get(ctx, cache.AppointmentStatusKey(id)); data != nil {
		card.Status = model.StatusName(data)
	}
	return card, nil
}

// ListForDoctor returns the doctor's cards ordered by date and time.
func (s *appointmentService) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]AppointmentCard, error) {
	appointments, err := s.appointmentRepo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	cards := make([]AppointmentCard, 0, len(appointments))
	for i := range appointments {
		card := s.buildCard(&appointments[i])
		if data, _ := s.cache.Get(ctx, cache.AppointmentStatusKey(card.ID)); data != nil {
			card.Status = model.StatusName(data)
		}
		cards = append(cards, *card)
	}
	return cards, nil
}

// ChangeStatus transitions a pending appointment to accepted or rejected on
// behalf of its doctor. The target status is written to the cache before the
// database update so readers see the decision immediately; on confirmed
// success the entry is removed, on failure it is rolled back.
func (s *appointmentService) ChangeStatus(ctx context.Context, id, actorID uuid.UUID, target model.StatusName, rejectionReason string) (*AppointmentCard, error) {
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}

	if appointment.DoctorID != actorID {
		return nil, errors.ErrNotAppointmentDoctor
	}
	if appointment.Status == nil || appointment.Status.Name != model.StatusPending {
		return nil, errors.ErrAppointmentDecided
	}

	switch target {
	case model.StatusAccepted:
		rejectionReason = ""
	case model.StatusRejected:
		if !model.ValidRejectionReason(rejectionReason) {
			return nil, errors.ErrRejectionReasonRequired
		}
	default:
		return nil, errors.ErrInvalidStatus
	}

	status, err := s.statusRepo.FindByName(ctx, target)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrStatusNotFound
		}
		return nil, fmt.Errorf("find status: %w", err)
	}

	// Optimistic entry: visible to readers while the write is in flight.
	_ = s.cache.Set(ctx, cache.AppointmentStatusKey(id), []byte(target), statusCacheTTL)

	appointment.StatusID = status.ID
	appointment.Status = status
	appointment.RejectionReason = rejectionReason
	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		// Roll the optimistic entry back so reads fall through to the
		// unchanged database row.
		_ = s.cache.Delete(ctx, cache.AppointmentStatusKey(id))
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	// Confirmed: the row is authoritative, drop the overlay.
	_ = s.cache.Delete(ctx, cache.AppointmentStatusKey(id))

	return s.buildCard(appointment), nil
}

func (s *appointmentService) buildCard(appointment *model.Appointment) *AppointmentCard {
	card := &AppointmentCard{
		ID:              appointment.ID,
		Date:            appointment.Date,
		ReadableDate:    appointment.Date.Format(readableDateLayout),
		Time:            appointment.Time,
		Symptoms:        appointment.Symptoms,
		Description:     appointment.Description,
		RejectionReason: appointment.RejectionReason,
	}
	if appointment.Status != nil {
		card.Status = appointment.Status.Name
	}
	if appointment.Patient != nil {
		card.Patient = PatientInfo{
			Name:      appointment.Patient.Name,
			Gender:    appointment.Patient.Gender,
			BirthDate: appointment.Patient.BirthDate,
			Image:     appointment.Patient.Image,
		}
	}
	return card
}
