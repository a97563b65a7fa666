package report

type CreateReportRequest struct {
	WorkerID int64  `json:"reportedWorkerId" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}
