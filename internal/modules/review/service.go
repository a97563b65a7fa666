package review

import (
	"context"
	"errors"
	"strings"

	"crewhub/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepositoryInterface interface {
	Create(ctx context.Context, rv *domain.Review) error
	ExistsForAppointment(ctx context.Context, appointmentID int64) (bool, error)
	ListByWorker(ctx context.Context, workerID int64) ([]domain.Review, error)
}

// AppointmentGate checks that a review is attached to a real, finished
// appointment of the reviewer.
type AppointmentGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
}

type Service struct {
	reviews      ReviewRepositoryInterface
	appointments AppointmentGate
}

type CreateReviewRequest struct {
	AppointmentID int64  `json:"appointmentId" binding:"required"`
	WorkerID      int64  `json:"workerId" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment,omitempty"`
}

func NewService(reviews ReviewRepositoryInterface, appointments AppointmentGate) *Service {
	return &Service{reviews: reviews, appointments: appointments}
}

// Create records a review for the caller's own completed appointment. One
// review per appointment.
func (s *Service) Create(ctx context.Context, customerID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	appt, err := s.appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if appt.CustomerID != customerID {
		return nil, ErrForbidden
	}
	if appt.WorkerID != req.WorkerID {
		return nil, ErrWorkerMismatch
	}
	if appt.Status != domain.AppointmentCompleted {
		return nil, ErrNotCompleted
	}

	taken, err := s.reviews.ExistsForAppointment(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicate
	}

	rv := &domain.Review{
		AppointmentID: req.AppointmentID,
		WorkerID:      req.WorkerID,
		CustomerID:    customerID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListByWorker(ctx context.Context, workerID int64) ([]domain.Review, error) {
	return s.reviews.ListByWorker(ctx, workerID)
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
