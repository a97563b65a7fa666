package worker

import "errors"

var ErrNotFound = errors.New("worker not found")
