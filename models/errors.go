package models

import "errors"

// Sentinel errors shared by services, handlers and the API client so each
// failure kind stays distinguishable end to end.
var (
	ErrInvalid      = errors.New("invalid payload")
	ErrSlugConflict = errors.New("slug already in use")
	ErrConflict     = errors.New("record already exists")
	ErrNotFound     = errors.New("record not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrServer       = errors.New("server error")
	ErrUnknownBlock = errors.New("unknown block id")
)
