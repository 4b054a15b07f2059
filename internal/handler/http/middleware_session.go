// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-spellbook/internal/config"
	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/session"
	"github.com/MKhiriev/go-spellbook/internal/utils"
)

// cookieSettings describes the session cookie.
type cookieSettings struct {
	name    string
	signKey string
	issuer  string
	ttl     time.Duration
}

func newCookieSettings(cfg config.App) cookieSettings {
	return cookieSettings{
		name:    cfg.SessionCookie,
		signKey: cfg.SessionSignKey,
		issuer:  cfg.SessionIssuer,
		ttl:     cfg.SessionTTL,
	}
}

// withSession resolves the caller's session and stores it in the request
// context under [utils.SessionCtxKey].
//
// The cookie value is a signed token whose subject is the session id. A
// missing, forged or expired token, or a session the manager no longer
// knows, starts a fresh session. The cookie is re-issued on every request
// so that an active session keeps sliding its expiry forward.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		s, err := h.resolveSession(r)
		if err != nil {
			log.Debug().Err(err).Msg("starting a new session")
			s = h.sessions.New()
		}

		token, err := utils.GenerateSessionToken(h.cookie.issuer, s.ID(), h.cookie.ttl, h.cookie.signKey)
		if err != nil {
			log.Err(err).Msg("error issuing session cookie")
			utils.WriteText(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     h.cookie.name,
			Value:    token,
			Path:     "/",
			MaxAge:   int(h.cookie.ttl.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), s)))
	})
}

var errUnknownSession = errors.New("unknown session")

func (h *Handler) resolveSession(r *http.Request) (*session.Session, error) {
	cookie, err := r.Cookie(h.cookie.name)
	if err != nil {
		return nil, err
	}

	id, err := utils.ParseSessionToken(cookie.Value, h.cookie.signKey, h.cookie.issuer)
	if err != nil {
		return nil, err
	}

	s, ok := h.sessions.Get(id)
	if !ok {
		return nil, errUnknownSession
	}
	return s, nil
}

// sessionFromRequest returns the session put in place by withSession.
func sessionFromRequest(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no session in request context")
		utils.WriteText(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
	return s, ok
}
