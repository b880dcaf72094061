package domain

import "errors"

var (
	ErrEmptyFileName          = errors.New("file name is empty")
	ErrSaveNotFound           = errors.New("save not found")
	ErrUnsupportedSaveVersion = errors.New("unsupported save schema version")
	ErrUnknownSignal          = errors.New("unknown lifecycle signal")
	ErrInvalidProfileField    = errors.New("invalid profile field")
)
