package report

import (
	"context"
	"errors"
	"strings"

	"crewhub/internal/domain"

	"gorm.io/gorm"
)

type ReportRepositoryInterface interface {
	Create(ctx context.Context, rp *domain.Report) error
	GetByID(ctx context.Context, id int64) (*domain.Report, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to domain.ReportStatus) (int64, error)
}

type WorkerReader interface {
	GetWorker(ctx context.Context, id int64) (*domain.User, error)
}

type Service struct {
	reports ReportRepositoryInterface
	users   WorkerReader
}

func NewService(reports ReportRepositoryInterface, users WorkerReader) *Service {
	return &Service{reports: reports, users: users}
}

// Create files a report against a worker. The target must exist and hold
// the worker role; reports against customers or admins are rejected.
func (s *Service) Create(ctx context.Context, reporterID, workerID int64, reason string) (*domain.Report, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}
	if _, err := s.users.GetWorker(ctx, workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	rp := &domain.Report{
		ReporterID: reporterID,
		WorkerID:   workerID,
		Reason:     strings.TrimSpace(reason),
		Status:     domain.ReportPending,
	}
	if err := s.reports.Create(ctx, rp); err != nil {
		return nil, err
	}
	return rp, nil
}

// Resolve marks a pending report as resolved.
func (s *Service) Resolve(ctx context.Context, id int64) (*domain.Report, error) {
	affected, err := s.reports.UpdateStatusIf(ctx, id, domain.ReportPending, domain.ReportResolved)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		current, err := s.reports.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if current.Status == domain.ReportResolved {
			return nil, ErrAlreadyResolved
		}
		return nil, ErrNotFound
	}
	return s.reports.GetByID(ctx, id)
}
