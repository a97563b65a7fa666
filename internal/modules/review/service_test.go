package review

import (
	"context"
	"testing"

	"crewhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil && rv.ID == 0 {
		rv.ID = 5
	}
	return args.Error(0)
}

func (m *MockReviewRepository) ExistsForAppointment(ctx context.Context, appointmentID int64) (bool, error) {
	args := m.Called(ctx, appointmentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListByWorker(ctx context.Context, workerID int64) ([]domain.Review, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

type MockAppointmentGate struct {
	mock.Mock
}

func (m *MockAppointmentGate) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func completedAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:         11,
		CustomerID: 1,
		WorkerID:   2,
		Status:     domain.AppointmentCompleted,
	}
}

func validRequest() CreateReviewRequest {
	return CreateReviewRequest{
		AppointmentID: 11,
		WorkerID:      2,
		Rating:        5,
		Comment:       "Quick and tidy",
	}
}

func TestService_Create_Success(t *testing.T) {
	reviews := new(MockReviewRepository)
	appointments := new(MockAppointmentGate)

	appointments.On("GetByID", mock.Anything, int64(11)).Return(completedAppointment(), nil)
	reviews.On("ExistsForAppointment", mock.Anything, int64(11)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(reviews, appointments)

	rv, err := service.Create(context.Background(), 1, validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), rv.CustomerID)
	assert.Equal(t, int64(2), rv.WorkerID)
	assert.Equal(t, 5, rv.Rating)
}

func TestService_Create_RatingBounds(t *testing.T) {
	service := NewService(new(MockReviewRepository), new(MockAppointmentGate))

	for _, rating := range []int{0, -1, 6, 100} {
		req := validRequest()
		req.Rating = rating
		_, err := service.Create(context.Background(), 1, req)
		assert.ErrorIs(t, err, ErrInvalidRating, "rating=%d", rating)
	}
}

func TestService_Create_AppointmentNotFound(t *testing.T) {
	appointments := new(MockAppointmentGate)
	appointments.On("GetByID", mock.Anything, int64(11)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(MockReviewRepository), appointments)

	_, err := service.Create(context.Background(), 1, validRequest())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_Create_NotOwnAppointment(t *testing.T) {
	appointments := new(MockAppointmentGate)
	appointments.On("GetByID", mock.Anything, int64(11)).Return(completedAppointment(), nil)

	service := NewService(new(MockReviewRepository), appointments)

	_, err := service.Create(context.Background(), 99, validRequest())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_WorkerMismatch(t *testing.T) {
	appointments := new(MockAppointmentGate)
	appointments.On("GetByID", mock.Anything, int64(11)).Return(completedAppointment(), nil)

	service := NewService(new(MockReviewRepository), appointments)

	req := validRequest()
	req.WorkerID = 77
	_, err := service.Create(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrWorkerMismatch)
}

func TestService_Create_NotCompleted(t *testing.T) {
	appointments := new(MockAppointmentGate)
	appt := completedAppointment()
	appt.Status = domain.AppointmentAccepted
	appointments.On("GetByID", mock.Anything, int64(11)).Return(appt, nil)

	service := NewService(new(MockReviewRepository), appointments)

	_, err := service.Create(context.Background(), 1, validRequest())
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestService_Create_Duplicate(t *testing.T) {
	reviews := new(MockReviewRepository)
	appointments := new(MockAppointmentGate)

	appointments.On("GetByID", mock.Anything, int64(11)).Return(completedAppointment(), nil)
	reviews.On("ExistsForAppointment", mock.Anything, int64(11)).Return(true, nil)

	service := NewService(reviews, appointments)

	_, err := service.Create(context.Background(), 1, validRequest())
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestService_ListByWorker(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("ListByWorker", mock.Anything, int64(2)).Return([]domain.Review{
		{ID: 1, WorkerID: 2, Rating: 5},
		{ID: 2, WorkerID: 2, Rating: 3},
	}, nil)

	service := NewService(reviews, new(MockAppointmentGate))

	items, err := service.ListByWorker(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
