package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-spellbook/internal/app"
	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/service"
	"github.com/MKhiriev/go-spellbook/internal/utils"
	"github.com/MKhiriev/go-spellbook/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order; the first target err wraps wins, so
// specific errors precede the kinds they wrap.
var errorResponses = []errorResponse{
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest, app.MsgMissingParameters},
	{validators.ErrInvalidLockedValue, http.StatusBadRequest, app.MsgInvalidLocked},
	{validators.ErrInvalidSpellList, http.StatusBadRequest, app.MsgInvalidSpellList},
	{validators.ErrInvalidSpellLevel, http.StatusBadRequest, app.MsgInvalidSpellLevel},
	{validators.ErrInvalidReferenceKey, http.StatusBadRequest, app.MsgInvalidReferenceKey},

	{service.ErrMissingParameters, http.StatusBadRequest, app.MsgMissingParameters},
	{service.ErrNoActiveAccount, http.StatusBadRequest, app.MsgNotLoggedIn},
	{service.ErrNoActiveCharacter, http.StatusBadRequest, app.MsgNoCharacter},
	{service.ErrUsernameTaken, http.StatusBadRequest, app.MsgUsernameTaken},
	{service.ErrAlreadyLoggedIn, http.StatusBadRequest, app.MsgAlreadyLoggedIn},
	{service.ErrAccountNotFound, http.StatusBadRequest, app.MsgNoSuchAccount},
	{service.ErrCharacterExists, http.StatusBadRequest, app.MsgCharacterExists},
	{service.ErrCharacterNotFound, http.StatusBadRequest, app.MsgNoSuchCharacter},
	{service.ErrCharacterLocked, http.StatusConflict, app.MsgCharacterLocked},

	{service.ErrSpellNotFound, http.StatusNotFound, app.MsgNoSuchSpell},
	{service.ErrClassNotFound, http.StatusNotFound, app.MsgNoSuchClass},
	{service.ErrReferenceUnavailable, http.StatusBadGateway, app.MsgReferenceDown},

	{service.ErrValidation, http.StatusBadRequest, app.MsgInvalidRequest},
	{service.ErrConflict, http.StatusBadRequest, app.MsgConflict},
	{service.ErrSelfConflict, http.StatusBadRequest, app.MsgRepeatedState},
	{service.ErrNotFound, http.StatusBadRequest, app.MsgNotFound},
}

// responseFromError returns the status and client message for err. Errors
// with no entry, storage errors among them, map to 500 with failMessage.
func responseFromError(err error, failMessage string) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, failMessage
}

// writeError logs err and writes the mapped text response.
func writeError(w http.ResponseWriter, r *http.Request, err error, failMessage string) {
	log := logger.FromRequest(r)

	status, message := responseFromError(err, failMessage)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteText(w, message, status)
}
