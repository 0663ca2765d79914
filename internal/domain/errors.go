package domain

import "errors"

var (
	ErrUserInput      = errors.New("invalid user input")
	ErrConnectivity   = errors.New("no internet connection")
	ErrAuth           = errors.New("authentication rejected")
	ErrPersistence    = errors.New("persistence failure")
	ErrNotFound       = errors.New("not found")
	ErrUnconfigured   = errors.New("backend not configured")
	ErrUnknownCommand = errors.New("unknown command")
	ErrSecretNotFound = errors.New("secret not found")
)
