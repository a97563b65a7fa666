package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"crewhub/internal/domain"
	"crewhub/internal/pkg/password"
	"crewhub/internal/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service contains all business logic for registration, login and session
// resolution.
type Service struct {
	users       UserRepositoryInterface
	sessions    SessionRepositoryInterface
	jwt         tokenIssuer
	tokenPepper string
	sessionTTL  time.Duration
	maxSessions int
}

type LoginResult struct {
	User         *domain.User
	SessionToken string
	AccessToken  string
	ExpiresAt    time.Time
}

func NewService(
	users UserRepositoryInterface,
	sessions SessionRepositoryInterface,
	jwt tokenIssuer,
	tokenPepper string,
	sessionTTL time.Duration,
	maxSessions int,
) *Service {
	return &Service{
		users:       users,
		sessions:    sessions,
		jwt:         jwt,
		tokenPepper: tokenPepper,
		sessionTTL:  sessionTTL,
		maxSessions: maxSessions,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest, userAgent, ip string) (*LoginResult, error) {
	role := domain.UserRole(strings.TrimSpace(req.Role))
	if !domain.ValidRole(role) {
		return nil, invalid("role", "role must be one of customer, worker, admin")
	}

	var profile *domain.WorkerProfile
	if role == domain.RoleWorker {
		serviceType := domain.ServiceType(strings.TrimSpace(req.WorkerType))
		if !domain.ValidServiceType(serviceType) {
			return nil, invalid("workerType", "workerType must be a known service category")
		}
		if req.VisitingCharge == nil || *req.VisitingCharge < 0 {
			return nil, invalid("visitingCharge", "visitingCharge must be a non-negative amount")
		}
		available := true
		if req.IsAvailable != nil {
			available = *req.IsAvailable
		}
		profile = &domain.WorkerProfile{
			ServiceType:    serviceType,
			VisitingCharge: *req.VisitingCharge,
			IsAvailable:    available,
		}
	} else if req.WorkerType != "" || req.VisitingCharge != nil {
		return nil, invalid("workerType", "worker fields are only valid for worker registrations")
	}

	username := strings.TrimSpace(strings.ToLower(req.Username))
	if fields := validator.Validate(&domain.User{Username: username}); fields != nil {
		return nil, invalid("username", "username must be a valid email address")
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Mobile:       req.Mobile,
		Address:      req.Address,
		Pincode:      req.Pincode,
		Role:         role,
		Worker:       profile,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique index can still fire between the exists check and the
		// insert.
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return s.openSession(ctx, user, userAgent, ip)
}

func (s *Service) Login(ctx context.Context, req LoginRequest, userAgent, ip string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(strings.ToLower(req.Username)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same error as a wrong password so the response does not reveal
			// which usernames exist.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := password.Compare(user.PasswordHash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(ctx, user, userAgent, ip)
}

// Logout revokes the session behind the raw cookie token. An unknown token is
// not an error.
func (s *Service) Logout(ctx context.Context, rawToken string) error {
	sess, err := s.sessions.GetByTokenHash(ctx, hashToken(rawToken, s.tokenPepper))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.sessions.Revoke(ctx, sess.ID)
}

// ResolveSession maps a raw cookie token back to its identity.
func (s *Service) ResolveSession(ctx context.Context, rawToken string) (*domain.User, error) {
	sess, err := s.sessions.GetByTokenHash(ctx, hashToken(rawToken, s.tokenPepper))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	if !sess.Active(time.Now()) {
		return nil, ErrInvalidSession
	}

	user, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) openSession(ctx context.Context, user *domain.User, userAgent, ip string) (*LoginResult, error) {
	raw, hash, err := generateSessionToken(s.tokenPepper)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.sessionTTL)
	sess := &domain.Session{
		UserID:    user.ID,
		TokenHash: hash,
		UserAgent: nullableString(userAgent),
		IP:        nullableString(ip),
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	if s.maxSessions > 0 {
		if err := s.sessions.RevokeOldestBeyond(ctx, user.ID, s.maxSessions); err != nil {
			return nil, err
		}
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{
		User:         user,
		SessionToken: raw,
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
	}, nil
}

func generateSessionToken(pepper string) (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	hash = hashToken(raw, pepper)
	return raw, hash, nil
}

func hashToken(raw, pepper string) string {
	sum := sha256.Sum256([]byte(raw + pepper))
	return hex.EncodeToString(sum[:])
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite driver reports the constraint in the message only
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func nullableString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
