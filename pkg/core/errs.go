package core

import "errors"

var (
	ErrInvalidInterval = errors.New("invalid interval")
	ErrEmptySeries     = errors.New("empty series")
)
