package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-spellbook/internal/app"
	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/utils"
	"github.com/MKhiriev/go-spellbook/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	usernames, err := h.services.AccountService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgUsersFailed)
		return
	}

	utils.WriteJSON(w, usernames, http.StatusOK)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	form, ok := readFormOrReject(w, r)
	if !ok {
		return
	}

	account, err := h.services.AccountService.CreateAccount(r.Context(), s, form.get("username"))
	if err != nil {
		writeError(w, r, err, app.MsgCreateAccountFailed)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

// login answers with the character rows of the account, or with the bare
// account when it has none yet.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	username := chi.URLParam(r, "username")
	characters, err := h.services.AccountService.Login(r.Context(), s, username)
	if err != nil {
		writeError(w, r, err, app.MsgOpenAccountFailed)
		return
	}

	if len(characters) == 0 {
		utils.WriteJSON(w, models.Account{Username: username}, http.StatusOK)
		return
	}
	utils.WriteJSON(w, characters, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	account, err := h.services.AccountService.Logout(r.Context(), s)
	if err != nil {
		writeError(w, r, err, app.MsgLogoutFailed)
		return
	}

	utils.WriteText(w, fmt.Sprintf("Logged out of account %s", account.Username), http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	account, err := h.services.AccountService.DeleteAccount(r.Context(), s)
	if err != nil {
		writeError(w, r, err, app.MsgDeleteFailed)
		return
	}

	utils.WriteText(w, fmt.Sprintf("Deleted account %s", account.Username), http.StatusOK)
}

// readFormOrReject answers 400 when the body cannot be read.
func readFormOrReject(w http.ResponseWriter, r *http.Request) (formFields, bool) {
	form, err := readForm(r)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid request body")
		utils.WriteText(w, app.MsgInvalidBody, http.StatusBadRequest)
		return nil, false
	}
	return form, true
}
