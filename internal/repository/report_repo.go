package repository

import (
	"context"
	"time"

	"crewhub/internal/domain"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type reportRow struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	ReporterID int64     `gorm:"column:reporter_id;index"`
	WorkerID   int64     `gorm:"column:reported_worker_id;index"`
	Reason     string    `gorm:"column:reason"`
	Status     string    `gorm:"column:status;default:pending"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (reportRow) TableName() string { return "reports" }

func toDomainReport(m reportRow) *domain.Report {
	return &domain.Report{
		ID:         m.ID,
		ReporterID: m.ReporterID,
		WorkerID:   m.WorkerID,
		Reason:     m.Reason,
		Status:     domain.ReportStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *ReportRepository) Create(ctx context.Context, rp *domain.Report) error {
	row := reportRow{
		ReporterID: rp.ReporterID,
		WorkerID:   rp.WorkerID,
		Reason:     rp.Reason,
		Status:     string(rp.Status),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	*rp = *toDomainReport(row)
	return nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	var m reportRow
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainReport(m), nil
}

func (r *ReportRepository) List(ctx context.Context) ([]domain.Report, error) {
	var rows []reportRow
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Report, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReport(m))
	}
	return out, nil
}

// UpdateStatusIf flips the report status only when it still matches from.
func (r *ReportRepository) UpdateStatusIf(ctx context.Context, id int64, from, to domain.ReportStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&reportRow{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{"status": string(to), "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}
