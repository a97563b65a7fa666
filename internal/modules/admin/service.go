package admin

import (
	"context"

	"crewhub/internal/domain"
)

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int64, error)
}

type AppointmentRepositoryInterface interface {
	CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int64, error)
}

type ReportRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Report, error)
}

type Stats struct {
	TotalUsers         int64 `json:"totalUsers"`
	TotalWorkers       int64 `json:"totalWorkers"`
	ActiveAppointments int64 `json:"activeAppointments"`
}

type Service struct {
	users        UserRepositoryInterface
	appointments AppointmentRepositoryInterface
	reports      ReportRepositoryInterface
}

func NewService(users UserRepositoryInterface, appointments AppointmentRepositoryInterface, reports ReportRepositoryInterface) *Service {
	return &Service{users: users, appointments: appointments, reports: reports}
}

// Stats counts customers, workers and appointments still waiting on a
// worker decision.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	customers, err := s.users.CountByRole(ctx, domain.RoleCustomer)
	if err != nil {
		return nil, err
	}
	workers, err := s.users.CountByRole(ctx, domain.RoleWorker)
	if err != nil {
		return nil, err
	}
	pending, err := s.appointments.CountByStatus(ctx, domain.AppointmentPending)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalUsers:         customers,
		TotalWorkers:       workers,
		ActiveAppointments: pending,
	}, nil
}

// Reports returns all reports, newest first, with reporter and reported
// worker attached. A report whose participants were deleted is still
// listed, just without the missing side.
func (s *Service) Reports(ctx context.Context) ([]domain.Report, error) {
	items, err := s.reports.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if reporter, err := s.users.GetByID(ctx, items[i].ReporterID); err == nil {
			reporter.PasswordHash = ""
			items[i].Reporter = reporter
		}
		if worker, err := s.users.GetByID(ctx, items[i].WorkerID); err == nil {
			worker.PasswordHash = ""
			items[i].Worker = worker
		}
	}
	return items, nil
}
