package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrUnavailable = errors.New("database unavailable")
	ErrInvalidStat = errors.New("invalid lookup stat")
)
