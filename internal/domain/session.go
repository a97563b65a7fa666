package domain

import "time"

// Session maps an opaque token (delivered in a cookie, stored only as a
// peppered hash) to an authenticated identity.
type Session struct {
	ID        int64
	UserID    int64
	TokenHash string
	UserAgent *string
	IP        *string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && s.ExpiresAt.After(now)
}
