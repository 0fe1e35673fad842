package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

var (
	ErrEmptyName    = errors.New("empty name")
	ErrNameTooLong  = errors.New("name too long")
	ErrInvalidDepth = errors.New("invalid depth")
)

var (
	ErrNoLanguages  = errors.New("no languages configured")
	ErrRunNotFound  = errors.New("run not found")
	ErrDuplicateRun = errors.New("run already exists")
	ErrAllFailed    = errors.New("all language searches failed")
)
