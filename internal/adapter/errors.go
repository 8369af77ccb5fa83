package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrInvalidChallengeToken = errors.New("invalid biometric challenge token")
	ErrInvalidCapability     = errors.New("invalid biometric capability")
)
