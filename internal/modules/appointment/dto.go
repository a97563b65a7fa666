package appointment

type CreateAppointmentRequest struct {
	WorkerID         int64  `json:"workerId" binding:"required"`
	IssueDescription string `json:"issueDescription"`
	Address          string `json:"address"`
}

type UpdateStatusRequest struct {
	Status    string `json:"status" binding:"required"`
	VisitTime string `json:"visitTime,omitempty"` // RFC 3339
}
