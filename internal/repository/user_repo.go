package repository

import (
	"context"
	"strings"
	"time"

	"crewhub/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	FullName     string    `gorm:"column:full_name"`
	Mobile       string    `gorm:"column:mobile"`
	Address      string    `gorm:"column:address"`
	Pincode      string    `gorm:"column:pincode"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userRow) TableName() string { return "users" }

type workerProfileRow struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	UserID         int64     `gorm:"column:user_id;uniqueIndex"`
	ServiceType    string    `gorm:"column:service_type"`
	VisitingCharge int       `gorm:"column:visiting_charge"`
	IsAvailable    bool      `gorm:"column:is_available;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (workerProfileRow) TableName() string { return "worker_profiles" }

func toDomainUser(m userRow) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Mobile:       m.Mobile,
		Address:      m.Address,
		Pincode:      m.Pincode,
		Role:         domain.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toDomainProfile(m workerProfileRow) *domain.WorkerProfile {
	return &domain.WorkerProfile{
		ID:             m.ID,
		UserID:         m.UserID,
		ServiceType:    domain.ServiceType(m.ServiceType),
		VisitingCharge: m.VisitingCharge,
		IsAvailable:    m.IsAvailable,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toUserRow(u *domain.User) userRow {
	return userRow{
		ID:           u.ID,
		Username:     strings.TrimSpace(strings.ToLower(u.Username)),
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Mobile:       u.Mobile,
		Address:      u.Address,
		Pincode:      u.Pincode,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// Create inserts the identity envelope and, for workers, the profile row in
// one transaction.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := toUserRow(u)
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		created := toDomainUser(row)
		created.Worker = u.Worker

		if u.Worker != nil {
			p := workerProfileRow{
				UserID:         row.ID,
				ServiceType:    string(u.Worker.ServiceType),
				VisitingCharge: u.Worker.VisitingCharge,
				IsAvailable:    u.Worker.IsAvailable,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			created.Worker = toDomainProfile(p)
		}

		*u = *created
		return nil
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userRow
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	u := toDomainUser(m)
	if err := r.attachProfile(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userRow
	err := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(strings.ToLower(username))).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	u := toDomainUser(m)
	if err := r.attachProfile(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userRow{}).
		Where("username = ?", strings.TrimSpace(strings.ToLower(username))).
		Count(&count).Error
	return count > 0, err
}

type WorkerFilters struct {
	Pincode     string
	ServiceType string
}

// ListWorkers returns worker identities with profiles attached. ServiceType is
// an exact match, Pincode a substring match.
func (r *UserRepository) ListWorkers(ctx context.Context, f WorkerFilters) ([]domain.User, error) {
	q := r.db.WithContext(ctx).Model(&userRow{}).
		Joins("JOIN worker_profiles wp ON wp.user_id = users.id").
		Where("users.role = ?", string(domain.RoleWorker))

	if f.ServiceType != "" {
		q = q.Where("wp.service_type = ?", f.ServiceType)
	}
	if f.Pincode != "" {
		q = q.Where("users.pincode LIKE ?", "%"+f.Pincode+"%")
	}

	var rows []userRow
	if err := q.Order("users.id").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		u := toDomainUser(m)
		if err := r.attachProfile(ctx, u); err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, nil
}

// GetWorker returns the identity only when it exists with role = worker.
func (r *UserRepository) GetWorker(ctx context.Context, id int64) (*domain.User, error) {
	var m userRow
	err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, string(domain.RoleWorker)).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	u := toDomainUser(m)
	if err := r.attachProfile(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) SetAvailability(ctx context.Context, userID int64, available bool) error {
	res := r.db.WithContext(ctx).Model(&workerProfileRow{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"is_available": available, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role domain.UserRole) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userRow{}).
		Where("role = ?", string(role)).
		Count(&count).Error
	return count, err
}

func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userRow{}).Count(&count).Error
	return count, err
}

func (r *UserRepository) attachProfile(ctx context.Context, u *domain.User) error {
	if u.Role != domain.RoleWorker {
		return nil
	}
	var p workerProfileRow
	err := r.db.WithContext(ctx).Where("user_id = ?", u.ID).First(&p).Error
	if err != nil {
		return err
	}
	u.Worker = toDomainProfile(p)
	return nil
}

func (r *UserRepository) DB() *gorm.DB { return r.db }
