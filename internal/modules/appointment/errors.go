package appointment

import "errors"

var (
	ErrValidation              = errors.New("invalid appointment request")
	ErrVisitTimeRequired       = errors.New("visit time is required to accept")
	ErrWorkerNotFound          = errors.New("worker not found")
	ErrNotFound                = errors.New("appointment not found")
	ErrForbidden               = errors.New("not a participant of this appointment")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
