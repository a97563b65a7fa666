package report

import "errors"

var (
	ErrReasonRequired  = errors.New("reason is required")
	ErrWorkerNotFound  = errors.New("reported worker not found")
	ErrNotFound        = errors.New("report not found")
	ErrAlreadyResolved = errors.New("report already resolved")
)
