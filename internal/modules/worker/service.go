package worker

import (
	"context"
	"errors"

	"crewhub/internal/domain"
	"crewhub/internal/repository"

	"gorm.io/gorm"
)

type UserRepositoryInterface interface {
	ListWorkers(ctx context.Context, f repository.WorkerFilters) ([]domain.User, error)
	GetWorker(ctx context.Context, id int64) (*domain.User, error)
	SetAvailability(ctx context.Context, userID int64, available bool) error
}

type RatingReader interface {
	AverageForWorker(ctx context.Context, workerID int64) (float64, error)
}

type Service struct {
	users   UserRepositoryInterface
	ratings RatingReader
}

// WorkerDetails is a worker profile with its derived average rating, which is
// recomputed on every read.
type WorkerDetails struct {
	domain.User
	AverageRating float64 `json:"averageRating"`
}

func NewService(users UserRepositoryInterface, ratings RatingReader) *Service {
	return &Service{users: users, ratings: ratings}
}

func (s *Service) List(ctx context.Context, pincode, serviceType string) ([]domain.User, error) {
	items, err := s.users.ListWorkers(ctx, repository.WorkerFilters{
		Pincode:     pincode,
		ServiceType: serviceType,
	})
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].PasswordHash = ""
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*WorkerDetails, error) {
	user, err := s.users.GetWorker(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	avg, err := s.ratings.AverageForWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &WorkerDetails{User: *user, AverageRating: avg}, nil
}

// SetAvailability toggles the caller's own availability flag.
func (s *Service) SetAvailability(ctx context.Context, workerUserID int64, available bool) (*domain.User, error) {
	if err := s.users.SetAvailability(ctx, workerUserID, available); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user, err := s.users.GetWorker(ctx, workerUserID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
