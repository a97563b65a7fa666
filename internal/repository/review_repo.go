package repository

import (
	"context"
	"time"

	"crewhub/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewRow struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	AppointmentID int64     `gorm:"column:appointment_id;uniqueIndex"`
	WorkerID      int64     `gorm:"column:worker_id;index"`
	CustomerID    int64     `gorm:"column:customer_id"`
	Rating        int       `gorm:"column:rating"`
	Comment       string    `gorm:"column:comment"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (reviewRow) TableName() string { return "reviews" }

func toDomainReview(m reviewRow) *domain.Review {
	return &domain.Review{
		ID:            m.ID,
		AppointmentID: m.AppointmentID,
		WorkerID:      m.WorkerID,
		CustomerID:    m.CustomerID,
		Rating:        m.Rating,
		Comment:       m.Comment,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	row := reviewRow{
		AppointmentID: rv.AppointmentID,
		WorkerID:      rv.WorkerID,
		CustomerID:    rv.CustomerID,
		Rating:        rv.Rating,
		Comment:       rv.Comment,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	*rv = *toDomainReview(row)
	return nil
}

func (r *ReviewRepository) ListByWorker(ctx context.Context, workerID int64) ([]domain.Review, error) {
	var rows []reviewRow
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}

// AverageForWorker recomputes the mean rating on every call, 0 with no reviews.
func (r *ReviewRepository) AverageForWorker(ctx context.Context, workerID int64) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Model(&reviewRow{}).
		Where("worker_id = ?", workerID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *ReviewRepository) ExistsForAppointment(ctx context.Context, appointmentID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&reviewRow{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error
	return count > 0, err
}
