package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service wraps exactly one of them,
// so the transport layer can match on the kind with [errors.Is].
var (
	ErrValidation           = errors.New("validation error")
	ErrConflict             = errors.New("conflict")
	ErrSelfConflict         = errors.New("self conflict")
	ErrNotFound             = errors.New("not found")
	ErrStorage              = errors.New("storage error")
	ErrReferenceUnavailable = errors.New("reference api unavailable")
)

var (
	ErrMissingParameters      = fmt.Errorf("%w: missing required parameters", ErrValidation)
	ErrNoActiveAccount        = fmt.Errorf("%w: no active account", ErrValidation)
	ErrNoActiveCharacter      = fmt.Errorf("%w: no character selected", ErrValidation)
	ErrInvalidCharacterUpdate = fmt.Errorf("%w: invalid character update", ErrValidation)
	ErrInvalidSpellQuery      = fmt.Errorf("%w: invalid spell query", ErrValidation)

	ErrUsernameTaken     = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrCharacterExists   = fmt.Errorf("%w: character already exists", ErrConflict)
	ErrCharacterLocked   = fmt.Errorf("%w: character is locked", ErrConflict)
	ErrAlreadyLoggedIn   = fmt.Errorf("%w: already logged into that account", ErrSelfConflict)
	ErrAccountNotFound   = fmt.Errorf("%w: account does not exist", ErrNotFound)
	ErrCharacterNotFound = fmt.Errorf("%w: character does not exist", ErrNotFound)
	ErrSpellNotFound     = fmt.Errorf("%w: spell does not exist", ErrNotFound)
	ErrClassNotFound     = fmt.Errorf("%w: class does not exist", ErrNotFound)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
