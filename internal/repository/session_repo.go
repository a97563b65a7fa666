package repository

import (
	"context"
	"time"

	"crewhub/internal/domain"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionRow struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	UserID    int64      `gorm:"column:user_id;index"`
	TokenHash string     `gorm:"column:token_hash;uniqueIndex"`
	UserAgent *string    `gorm:"column:user_agent"`
	IP        *string    `gorm:"column:ip"`
	ExpiresAt time.Time  `gorm:"column:expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (sessionRow) TableName() string { return "sessions" }

func toDomainSession(m sessionRow) *domain.Session {
	return &domain.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		UserAgent: m.UserAgent,
		IP:        m.IP,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
		CreatedAt: m.CreatedAt,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	row := sessionRow{
		UserID:    s.UserID,
		TokenHash: s.TokenHash,
		UserAgent: s.UserAgent,
		IP:        s.IP,
		ExpiresAt: s.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	*s = *toDomainSession(row)
	return nil
}

func (r *SessionRepository) GetByTokenHash(ctx context.Context, hash string) (*domain.Session, error) {
	var m sessionRow
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainSession(m), nil
}

func (r *SessionRepository) Revoke(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&sessionRow{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", time.Now()).Error
}

// RevokeOldestBeyond keeps at most keep active sessions per user, revoking the
// oldest surplus ones.
func (r *SessionRepository) RevokeOldestBeyond(ctx context.Context, userID int64, keep int) error {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&sessionRow{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Order("created_at DESC, id DESC").
		Offset(keep).
		Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return err
	}
	return r.db.WithContext(ctx).Model(&sessionRow{}).
		Where("id IN ?", ids).
		Update("revoked_at", time.Now()).Error
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ? OR revoked_at IS NOT NULL", time.Now()).
		Delete(&sessionRow{})
	return res.RowsAffected, res.Error
}
