package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"crewhub/internal/domain"

	"gorm.io/gorm"
)

// Service is the appointment lifecycle engine: it owns the
// pending -> accepted|rejected -> completed state machine and the
// participant-scoped visibility rules around it.
type Service struct {
	appointments AppointmentRepository
	users        UserReader
}

func NewService(appointments AppointmentRepository, users UserReader) *Service {
	return &Service{appointments: appointments, users: users}
}

// Create files a new booking request in state pending. Worker availability is
// deliberately not checked: a request is a proposal the worker decides on.
func (s *Service) Create(ctx context.Context, customerID int64, req CreateAppointmentRequest) (*domain.Appointment, error) {
	if strings.TrimSpace(req.IssueDescription) == "" || strings.TrimSpace(req.Address) == "" {
		return nil, ErrValidation
	}

	if _, err := s.users.GetWorker(ctx, req.WorkerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	a := &domain.Appointment{
		CustomerID:       customerID,
		WorkerID:         req.WorkerID,
		IssueDescription: req.IssueDescription,
		Address:          req.Address,
		Status:           domain.AppointmentPending,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns the caller's appointments, newest first: customers see the
// ones they created, workers the ones assigned to them. Each entry carries
// both participant identities.
func (s *Service) List(ctx context.Context, userID int64, role domain.UserRole) ([]domain.Appointment, error) {
	items, err := s.appointments.ListByParticipant(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if customer, err := s.users.GetByID(ctx, items[i].CustomerID); err == nil {
			customer.PasswordHash = ""
			items[i].Customer = customer
		}
		if worker, err := s.users.GetByID(ctx, items[i].WorkerID); err == nil {
			worker.PasswordHash = ""
			items[i].Worker = worker
		}
	}
	return items, nil
}

// UpdateStatus applies a worker decision. The write is a conditional update
// against the expected source state, so two racing decisions cannot both win.
func (s *Service) UpdateStatus(ctx context.Context, actorID int64, actorRole domain.UserRole, id int64, status domain.AppointmentStatus, visitTime *time.Time) (*domain.Appointment, error) {
	current, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if actorRole != domain.RoleWorker || current.WorkerID != actorID {
		return nil, ErrForbidden
	}

	var from domain.AppointmentStatus
	switch status {
	case domain.AppointmentAccepted:
		if visitTime == nil {
			return nil, ErrVisitTimeRequired
		}
		from = domain.AppointmentPending
	case domain.AppointmentRejected:
		visitTime = nil
		from = domain.AppointmentPending
	case domain.AppointmentCompleted:
		visitTime = nil
		from = domain.AppointmentAccepted
	default:
		return nil, ErrValidation
	}

	if !domain.CanTransition(current.Status, status) {
		return nil, ErrInvalidStatusTransition
	}

	affected, err := s.appointments.UpdateStatusIf(ctx, id, from, status, visitTime)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Lost a race: the row moved out of the expected state between the
		// read and the write.
		if _, err := s.appointments.GetByID(ctx, id); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrInvalidStatusTransition
	}

	return s.appointments.GetByID(ctx, id)
}
