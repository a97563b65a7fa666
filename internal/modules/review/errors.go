package review

import "errors"

var (
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrWorkerMismatch      = errors.New("worker does not match the appointment")
	ErrForbidden           = errors.New("not the customer of this appointment")
	ErrNotCompleted        = errors.New("appointment is not completed")
	ErrDuplicate           = errors.New("appointment already reviewed")
)
