package config

import "errors"

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")
