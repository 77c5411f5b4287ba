package config

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrDecode        = errors.New("decode configuration")
)
