package domain

import "time"

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportResolved ReportStatus = "resolved"
)

type Report struct {
	ID         int64        `json:"id"`
	ReporterID int64        `json:"reporterId"`
	WorkerID   int64        `json:"reportedWorkerId"`
	Reason     string       `json:"reason"`
	Status     ReportStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`

	Reporter *User `json:"reporter,omitempty"`
	Worker   *User `json:"reportedWorker,omitempty"`
}
