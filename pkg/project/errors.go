package project

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknownAnswer        = errors.New("unknown answer")
)
