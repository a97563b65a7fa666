package worker

import (
	"context"
	"testing"

	"crewhub/internal/domain"
	"crewhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListWorkers(ctx context.Context, f repository.WorkerFilters) ([]domain.User, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) GetWorker(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetAvailability(ctx context.Context, userID int64, available bool) error {
	args := m.Called(ctx, userID, available)
	return args.Error(0)
}

type MockRatingReader struct {
	mock.Mock
}

func (m *MockRatingReader) AverageForWorker(ctx context.Context, workerID int64) (float64, error) {
	args := m.Called(ctx, workerID)
	return args.Get(0).(float64), args.Error(1)
}

func sampleWorker(id int64) *domain.User {
	return &domain.User{
		ID:           id,
		Username:     "worker@example.com",
		PasswordHash: "secret",
		Role:         domain.RoleWorker,
		Pincode:      "10001",
		Worker: &domain.WorkerProfile{
			UserID:         id,
			ServiceType:    domain.ServiceElectrician,
			VisitingCharge: 50,
			IsAvailable:    true,
		},
	}
}

func TestService_List_PassesFilters(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ListWorkers", mock.Anything, repository.WorkerFilters{
		Pincode:     "100",
		ServiceType: "Electrician",
	}).Return([]domain.User{*sampleWorker(2)}, nil)

	service := NewService(users, new(MockRatingReader))

	items, err := service.List(context.Background(), "100", "Electrician")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].PasswordHash)
	users.AssertExpectations(t)
}

func TestService_Get_AttachesAverageRating(t *testing.T) {
	users := new(MockUserRepository)
	ratings := new(MockRatingReader)

	users.On("GetWorker", mock.Anything, int64(2)).Return(sampleWorker(2), nil)
	ratings.On("AverageForWorker", mock.Anything, int64(2)).Return(4.0, nil)

	service := NewService(users, ratings)

	details, err := service.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, details.AverageRating)
	assert.Empty(t, details.PasswordHash)
}

func TestService_Get_NoReviewsMeansZero(t *testing.T) {
	users := new(MockUserRepository)
	ratings := new(MockRatingReader)

	users.On("GetWorker", mock.Anything, int64(2)).Return(sampleWorker(2), nil)
	ratings.On("AverageForWorker", mock.Anything, int64(2)).Return(0.0, nil)

	service := NewService(users, ratings)

	details, err := service.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Zero(t, details.AverageRating)
}

func TestService_Get_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetWorker", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, new(MockRatingReader))

	_, err := service.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_SetAvailability(t *testing.T) {
	users := new(MockUserRepository)

	updated := sampleWorker(2)
	updated.Worker.IsAvailable = false

	users.On("SetAvailability", mock.Anything, int64(2), false).Return(nil)
	users.On("GetWorker", mock.Anything, int64(2)).Return(updated, nil)

	service := NewService(users, new(MockRatingReader))

	user, err := service.SetAvailability(context.Background(), 2, false)
	require.NoError(t, err)
	require.NotNil(t, user.Worker)
	assert.False(t, user.Worker.IsAvailable)
}

func TestService_SetAvailability_NoProfile(t *testing.T) {
	users := new(MockUserRepository)
	users.On("SetAvailability", mock.Anything, int64(5), true).Return(gorm.ErrRecordNotFound)

	service := NewService(users, new(MockRatingReader))

	_, err := service.SetAvailability(context.Background(), 5, true)
	assert.ErrorIs(t, err, ErrNotFound)
}
