package appointment

import (
	"context"
	"time"

	"crewhub/internal/domain"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByParticipant(ctx context.Context, userID int64, role domain.UserRole) ([]domain.Appointment, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to domain.AppointmentStatus, visitTime *time.Time) (int64, error)
}

// UserReader resolves the identities referenced by an appointment.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetWorker(ctx context.Context, id int64) (*domain.User, error)
}
