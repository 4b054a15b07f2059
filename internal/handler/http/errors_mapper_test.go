package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-spellbook/internal/service"
	"github.com/MKhiriev/go-spellbook/internal/store"
	"github.com/MKhiriev/go-spellbook/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	const fail = "Server error."

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"missing parameters", service.ErrMissingParameters, http.StatusBadRequest, "Missing required parameters."},
		{"wrapped missing parameters", fmt.Errorf("%w: %w", service.ErrMissingParameters, validators.ErrEmptySnakeName), http.StatusBadRequest, "Missing required parameters."},
		{"no fields beats invalid update", fmt.Errorf("%w: %w", service.ErrInvalidCharacterUpdate, validators.ErrNoFieldsToUpdate), http.StatusBadRequest, "Missing required parameters."},
		{"bad lock value", fmt.Errorf("%w: %w", service.ErrInvalidCharacterUpdate, validators.ErrInvalidLockedValue), http.StatusBadRequest, `Locked must be "true" or "false".`},
		{"lock conflict", service.ErrCharacterLocked, http.StatusConflict, "Character is locked. Unlock it before changing its spells."},
		{"self conflict", service.ErrAlreadyLoggedIn, http.StatusBadRequest, "Already logged into that account."},
		{"bare kind", service.ErrNotFound, http.StatusBadRequest, "Requested data does not exist."},
		{"spell not found", service.ErrSpellNotFound, http.StatusNotFound, "No spell with that name exists."},
		{"reference", service.ErrReferenceUnavailable, http.StatusBadGateway, "Spell reference is unavailable. Please try again later."},
		{"storage hides detail", fmt.Errorf("%w: %w", service.ErrStorage, store.ErrAcquiringConnection), http.StatusInternalServerError, fail},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, fail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := responseFromError(tt.err, fail)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
