package domain

import "time"

type Review struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointmentId"`
	WorkerID      int64     `json:"workerId"`
	CustomerID    int64     `json:"userId"`
	Rating        int       `json:"rating" validate:"required,min=1,max=5"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
