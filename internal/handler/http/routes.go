package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// console routes behind bearer-token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/console", func(r chi.Router) {
			r.Route("/apps", func(r chi.Router) {
				r.Get("/", h.listApps)
				r.Post("/", h.createApp)
				r.Get("/default", h.getDefaultApp)

				r.Route("/{appID}", func(r chi.Router) {
					r.Get("/", h.getApp)
					r.Put("/", h.updateApp)
					r.Delete("/", h.deleteApp)
					r.Put("/status", h.updateAppStatus)
					r.Put("/hidden", h.updateAppHidden)
					r.Put("/name", h.updateAppName)
					r.Put("/icon", h.updateAppIcon)
					r.Put("/site-enable", h.updateAppSiteStatus)
					r.Put("/api-enable", h.updateAppAPIStatus)
					r.Put("/default", h.setDefaultApp)

					r.Get("/api-keys", h.listAPIKeys)
					r.Post("/api-keys", h.createAPIKey)
					r.Delete("/api-keys/{keyID}", h.deleteAPIKey)

					r.Get("/conversations", h.listConversations)
					r.Delete("/conversations/delete_bulk", h.bulkDeleteConversations)
					r.Post("/conversations/{conversationID}/name", h.renameConversation)
					r.Delete("/conversations/{conversationID}", h.deleteConversation)
				})
			})

			r.Route("/advertising", func(r chi.Router) {
				r.Get("/", h.listAdvertising)
				r.Post("/", h.createAdvertising)
				r.Get("/{adID}", h.getAdvertising)
				r.Put("/{adID}", h.updateAdvertising)
				r.Delete("/{adID}", h.deleteAdvertising)
				r.Put("/{adID}/status", h.updateAdvertisingStatus)
			})

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", h.listTags)
				r.Post("/", h.createTag)
				r.Put("/{tagID}", h.renameTag)
				r.Delete("/{tagID}", h.deleteTag)

				r.Post("/bindings/create", h.saveTagBindings)
				r.Post("/bindings/remove", h.removeTagBinding)
			})
		})
	})

	return router
}
