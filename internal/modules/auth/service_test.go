package auth

import (
	"context"
	"testing"
	"time"

	"crewhub/internal/domain"
	"crewhub/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && u.ID == 0 {
		u.ID = 42
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, s *domain.Session) error {
	args := m.Called(ctx, s)
	if s != nil && s.ID == 0 {
		s.ID = 7
	}
	return args.Error(0)
}

func (m *MockSessionRepository) GetByTokenHash(ctx context.Context, hash string) (*domain.Session, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) RevokeOldestBeyond(ctx context.Context, userID int64, keep int) error {
	args := m.Called(ctx, userID, keep)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func newTestService(users *MockUserRepository, sessions *MockSessionRepository) *Service {
	issuer := new(MockTokenIssuer)
	issuer.On("GenerateToken", mock.Anything, mock.Anything).Return("access-token", nil)
	return NewService(users, sessions, issuer, "test-pepper", time.Hour, 10)
}

func customerRequest() RegisterRequest {
	return RegisterRequest{
		Username: "alice@example.com",
		Password: "password123",
		FullName: "Alice Doe",
		Mobile:   "1234567890",
		Address:  "1 Main St",
		Pincode:  "10001",
		Role:     "customer",
	}
}

func TestService_Register_Customer(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)

	users.On("ExistsByUsername", mock.Anything, "alice@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
	sessions.On("RevokeOldestBeyond", mock.Anything, int64(42), 10).Return(nil)

	service := newTestService(users, sessions)

	res, err := service.Register(context.Background(), customerRequest(), "go-test", "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", res.User.Username)
	assert.Equal(t, domain.RoleCustomer, res.User.Role)
	assert.Empty(t, res.User.PasswordHash)
	assert.NotEmpty(t, res.SessionToken)
	assert.Equal(t, "access-token", res.AccessToken)
}

func TestService_Register_NormalizesUsername(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)

	users.On("ExistsByUsername", mock.Anything, "alice@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice@example.com"
	})).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
	sessions.On("RevokeOldestBeyond", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	service := newTestService(users, sessions)

	req := customerRequest()
	req.Username = "  Alice@Example.COM "
	_, err := service.Register(context.Background(), req, "", "")
	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestService_Register_Worker(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)

	users.On("ExistsByUsername", mock.Anything, mock.Anything).Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Worker != nil &&
			u.Worker.ServiceType == domain.ServicePlumber &&
			u.Worker.VisitingCharge == 40 &&
			u.Worker.IsAvailable
	})).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
	sessions.On("RevokeOldestBeyond", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	service := newTestService(users, sessions)

	charge := 40
	req := customerRequest()
	req.Username = "bob@example.com"
	req.Role = "worker"
	req.WorkerType = "Plumber"
	req.VisitingCharge = &charge

	res, err := service.Register(context.Background(), req, "", "")
	require.NoError(t, err)
	require.NotNil(t, res.User.Worker)
	assert.Equal(t, domain.RoleWorker, res.User.Role)
}

func TestService_Register_UsernameMustBeEmail(t *testing.T) {
	service := newTestService(new(MockUserRepository), new(MockSessionRepository))

	req := customerRequest()
	req.Username = "not-an-email"

	_, err := service.Register(context.Background(), req, "", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "username", verr.Field)
}

func TestService_Register_InvalidRole(t *testing.T) {
	service := newTestService(new(MockUserRepository), new(MockSessionRepository))

	req := customerRequest()
	req.Role = "superuser"

	_, err := service.Register(context.Background(), req, "", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "role", verr.Field)
}

func TestService_Register_WorkerNeedsServiceType(t *testing.T) {
	service := newTestService(new(MockUserRepository), new(MockSessionRepository))

	req := customerRequest()
	req.Role = "worker"
	req.WorkerType = "Wizard"

	_, err := service.Register(context.Background(), req, "", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "workerType", verr.Field)
}

func TestService_Register_CustomerRejectsWorkerFields(t *testing.T) {
	service := newTestService(new(MockUserRepository), new(MockSessionRepository))

	req := customerRequest()
	req.WorkerType = "Plumber"

	_, err := service.Register(context.Background(), req, "", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestService_Register_UsernameTaken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByUsername", mock.Anything, "alice@example.com").Return(true, nil)

	service := newTestService(users, new(MockSessionRepository))

	_, err := service.Register(context.Background(), customerRequest(), "", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_Login_Success(t *testing.T) {
	hash, err := password.Hash("password123")
	require.NoError(t, err)

	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)
	users.On("GetByUsername", mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           42,
		Username:     "alice@example.com",
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
	}, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
	sessions.On("RevokeOldestBeyond", mock.Anything, int64(42), 10).Return(nil)

	service := newTestService(users, sessions)

	res, err := service.Login(context.Background(), LoginRequest{
		Username: "alice@example.com",
		Password: "password123",
	}, "go-test", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.User.ID)
	assert.Empty(t, res.User.PasswordHash)
	assert.NotEmpty(t, res.SessionToken)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, err := password.Hash("password123")
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           42,
		Username:     "alice@example.com",
		PasswordHash: hash,
	}, nil)

	service := newTestService(users, new(MockSessionRepository))

	_, err = service.Login(context.Background(), LoginRequest{
		Username: "alice@example.com",
		Password: "not-the-password",
	}, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUserSameError(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(users, new(MockSessionRepository))

	_, err := service.Login(context.Background(), LoginRequest{
		Username: "ghost@example.com",
		Password: "whatever",
	}, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ResolveSession(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)

	raw := "deadbeef"
	hash := hashToken(raw, "test-pepper")

	sessions.On("GetByTokenHash", mock.Anything, hash).Return(&domain.Session{
		ID:        7,
		UserID:    42,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	users.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{
		ID:   42,
		Role: domain.RoleCustomer,
	}, nil)

	service := newTestService(users, sessions)

	user, err := service.ResolveSession(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
}

func TestService_ResolveSession_Expired(t *testing.T) {
	sessions := new(MockSessionRepository)

	raw := "deadbeef"
	hash := hashToken(raw, "test-pepper")
	sessions.On("GetByTokenHash", mock.Anything, hash).Return(&domain.Session{
		ID:        7,
		UserID:    42,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	service := newTestService(new(MockUserRepository), sessions)

	_, err := service.ResolveSession(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_ResolveSession_Revoked(t *testing.T) {
	sessions := new(MockSessionRepository)

	raw := "deadbeef"
	hash := hashToken(raw, "test-pepper")
	revoked := time.Now().Add(-time.Minute)
	sessions.On("GetByTokenHash", mock.Anything, hash).Return(&domain.Session{
		ID:        7,
		UserID:    42,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revoked,
	}, nil)

	service := newTestService(new(MockUserRepository), sessions)

	_, err := service.ResolveSession(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_Logout_UnknownTokenIsNoop(t *testing.T) {
	sessions := new(MockSessionRepository)
	sessions.On("GetByTokenHash", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(new(MockUserRepository), sessions)

	err := service.Logout(context.Background(), "no-such-token")
	assert.NoError(t, err)
}
