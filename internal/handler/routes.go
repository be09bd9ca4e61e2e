package handler

import (
	"auth-web-server/internal/security"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

const apiDocsPath = "/api-docs"

func SetupAuthRoutes(r chi.Router, h *AuthenticationHandler, parser security.TokenParser) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.SignUp)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(parser))
			r.Get("/me", h.Me)
		})
	})
}

// SetupDocsRoutes : swagger UI на /api-docs
func SetupDocsRoutes(r chi.Router) {
	r.Get(apiDocsPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, apiDocsPath+"/index.html", http.StatusMovedPermanently)
	})
	r.Get(apiDocsPath+"/*", httpSwagger.WrapHandler)
}
