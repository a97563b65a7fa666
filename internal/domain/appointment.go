package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentAccepted  AppointmentStatus = "accepted"
	AppointmentRejected  AppointmentStatus = "rejected"
	AppointmentCompleted AppointmentStatus = "completed"
)

// CanTransition reports whether from -> to is a legal status transition.
// pending -> accepted|rejected, accepted -> completed; rejected and completed
// are terminal.
func CanTransition(from, to AppointmentStatus) bool {
	switch to {
	case AppointmentAccepted, AppointmentRejected:
		return from == AppointmentPending
	case AppointmentCompleted:
		return from == AppointmentAccepted
	}
	return false
}

type Appointment struct {
	ID               int64             `json:"id"`
	CustomerID       int64             `json:"userId"`
	WorkerID         int64             `json:"workerId"`
	IssueDescription string            `json:"issueDescription"`
	Address          string            `json:"address"`
	Status           AppointmentStatus `json:"status"`
	VisitTime        *time.Time        `json:"visitTime,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`

	Customer *User `json:"user,omitempty"`
	Worker   *User `json:"worker,omitempty"`
}
