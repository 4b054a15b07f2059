package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-spellbook/internal/app"
	"github.com/MKhiriev/go-spellbook/internal/utils"
	"github.com/MKhiriev/go-spellbook/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getSpell(w http.ResponseWriter, r *http.Request) {
	spell, err := h.services.SpellService.GetSpell(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, err, app.MsgReferenceFailed)
		return
	}

	utils.WriteJSON(w, spell, http.StatusOK)
}

// listSpells reads the optional level and school query parameters.
func (h *Handler) listSpells(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.SpellFilter{School: query.Get("school")}
	if raw := query.Get("level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			utils.WriteText(w, app.MsgInvalidSpellLevel, http.StatusBadRequest)
			return
		}
		filter.Level = &level
	}

	spells, err := h.services.SpellService.ListSpells(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, app.MsgReferenceFailed)
		return
	}

	utils.WriteJSON(w, spells, http.StatusOK)
}

func (h *Handler) getClass(w http.ResponseWriter, r *http.Request) {
	class, err := h.services.SpellService.GetClass(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, err, app.MsgReferenceFailed)
		return
	}

	utils.WriteJSON(w, class, http.StatusOK)
}

func (h *Handler) listClassSpells(w http.ResponseWriter, r *http.Request) {
	spells, err := h.services.SpellService.ListClassSpells(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, err, app.MsgReferenceFailed)
		return
	}

	utils.WriteJSON(w, spells, http.StatusOK)
}
