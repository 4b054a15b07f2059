package http

import (
	"net/http"

	"github.com/MKhiriev/go-spellbook/internal/app"
	"github.com/MKhiriev/go-spellbook/internal/utils"
	"github.com/MKhiriev/go-spellbook/models"
	"github.com/go-chi/chi/v5"
)

// Body fields accepted by /newcharacter and /savecharacter.
const (
	fieldProperName  = "proper_name"
	fieldSnakeName   = "snake_name"
	fieldSpells      = "spells"
	fieldBorderColor = "border_color"
	fieldClass       = "class"
	fieldLocked      = "locked"
)

// createCharacter answers with a one-element array, the shape the browser
// client reads for every character row.
func (h *Handler) createCharacter(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	form, ok := readFormOrReject(w, r)
	if !ok {
		return
	}

	character, err := h.services.CharacterService.CreateCharacter(r.Context(), s, form.get(fieldProperName), form.get(fieldSnakeName))
	if err != nil {
		writeError(w, r, err, app.MsgCreateCharacterFailed)
		return
	}

	utils.WriteJSON(w, []models.Character{character}, http.StatusOK)
}

func (h *Handler) getCharacter(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	character, err := h.services.CharacterService.SelectCharacter(r.Context(), s, chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err, app.MsgGetCharacterFailed)
		return
	}

	utils.WriteJSON(w, []models.Character{character}, http.StatusOK)
}

func (h *Handler) saveCharacter(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	form, ok := readFormOrReject(w, r)
	if !ok {
		return
	}

	update := models.CharacterUpdate{
		Spells:      form.lookup(fieldSpells),
		BorderColor: form.lookup(fieldBorderColor),
		Class:       form.lookup(fieldClass),
		Locked:      form.lookup(fieldLocked),
	}
	if err := h.services.CharacterService.UpdateCharacter(r.Context(), s, update); err != nil {
		writeError(w, r, err, app.MsgSaveCharacterFailed)
		return
	}

	utils.WriteText(w, app.MsgCharacterSaved, http.StatusOK)
}

func (h *Handler) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	deleted, err := h.services.CharacterService.DeleteCharacter(r.Context(), s)
	if err != nil {
		writeError(w, r, err, app.MsgDeleteFailed)
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}
