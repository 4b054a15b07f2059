package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}
	router.Use(h.withTraceID, h.withLogging)

	// account and character lifecycle, bound to the caller's session
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/users", h.listUsers)
		r.Post("/newaccount", h.createAccount)
		r.Get("/login/{username}", h.login)
		r.Post("/logout", h.logout)
		r.Post("/deleteaccount", h.deleteAccount)

		r.Post("/newcharacter", h.createCharacter)
		r.Get("/getcharacter/{name}", h.getCharacter)
		r.Post("/savecharacter", h.saveCharacter)
		r.Post("/deletecharacter", h.deleteCharacter)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Get("/spells", h.listSpells)
		r.Get("/spells/{key}", h.getSpell)
		r.Get("/classes/{key}", h.getClass)
		r.Get("/classes/{key}/spells", h.listClassSpells)
	})

	if h.server.StaticDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(h.server.StaticDir)))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
