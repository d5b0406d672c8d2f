package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource conflict")
	ErrInvalidOrdering = errors.New("records not strictly ascending by date key")
	ErrInvalidDateKey  = errors.New("invalid date key")
	ErrInvalidInput    = errors.New("invalid input")
)
