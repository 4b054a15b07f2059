package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("reference api: bad request")
	ErrNotFound            = errors.New("reference api: not found")
	ErrTooManyRequests     = errors.New("reference api: too many requests")
	ErrInternalServerError = errors.New("reference api: internal server error")
	ErrBadGateway          = errors.New("reference api: bad gateway")

	// ErrRequestFailed is returned when no response was received at all
	// (connection refused, timeout, canceled context).
	ErrRequestFailed = errors.New("reference api: request failed")

	// ErrDecodingResponse is returned when a 2xx body is not the expected JSON.
	ErrDecodingResponse = errors.New("reference api: error decoding response")
)
