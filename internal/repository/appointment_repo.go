package repository

import (
	"context"
	"time"

	"crewhub/internal/domain"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type appointmentRow struct {
	ID               int64      `gorm:"column:id;primaryKey"`
	CustomerID       int64      `gorm:"column:customer_id;index"`
	WorkerID         int64      `gorm:"column:worker_id;index"`
	IssueDescription string     `gorm:"column:issue_description"`
	Address          string     `gorm:"column:address"`
	Status           string     `gorm:"column:status;default:pending"`
	VisitTime        *time.Time `gorm:"column:visit_time"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (appointmentRow) TableName() string { return "appointments" }

func toDomainAppointment(m appointmentRow) *domain.Appointment {
	return &domain.Appointment{
		ID:               m.ID,
		CustomerID:       m.CustomerID,
		WorkerID:         m.WorkerID,
		IssueDescription: m.IssueDescription,
		Address:          m.Address,
		Status:           domain.AppointmentStatus(m.Status),
		VisitTime:        m.VisitTime,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	row := appointmentRow{
		CustomerID:       a.CustomerID,
		WorkerID:         a.WorkerID,
		IssueDescription: a.IssueDescription,
		Address:          a.Address,
		Status:           string(a.Status),
		VisitTime:        a.VisitTime,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	*a = *toDomainAppointment(row)
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var m appointmentRow
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainAppointment(m), nil
}

// ListByParticipant returns appointments where the identity is the customer or
// the worker, depending on its role, newest first.
func (r *AppointmentRepository) ListByParticipant(ctx context.Context, userID int64, role domain.UserRole) ([]domain.Appointment, error) {
	column := "customer_id"
	if role == domain.RoleWorker {
		column = "worker_id"
	}

	var rows []appointmentRow
	err := r.db.WithContext(ctx).
		Where(column+" = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAppointment(m))
	}
	return out, nil
}

// UpdateStatusIf transitions the appointment only when its stored status still
// matches from, as a single conditional update. It returns the number of rows
// changed; zero means the appointment is gone or no longer in the expected
// state.
func (r *AppointmentRepository) UpdateStatusIf(ctx context.Context, id int64, from, to domain.AppointmentStatus, visitTime *time.Time) (int64, error) {
	updates := map[string]any{
		"status":     string(to),
		"updated_at": time.Now(),
	}
	if visitTime != nil {
		updates["visit_time"] = *visitTime
	}

	res := r.db.WithContext(ctx).Model(&appointmentRow{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *AppointmentRepository) CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&appointmentRow{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}
