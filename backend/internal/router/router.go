package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/forum-api/backend/internal/setup"
	mw "github.com/itchan-dev/forum-api/shared/middleware"
	"github.com/itchan-dev/forum-api/shared/middleware/metrics"
	"github.com/itchan-dev/forum-api/shared/utils"
)

// New creates and configures a chi router with all the routes.
// IMPORTANT! the auth limiter is shared by /users and /authentications, so
// both count against the same per-IP budget.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(mw.AccessLog)
	r.Use(metrics.Middleware)
	r.Use(middleware.Compress(5))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureHeaders))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteFail(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteFail(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Credential endpoints
	r.Group(func(r chi.Router) {
		if deps.AuthLimiter != nil {
			r.Use(mw.RateLimit(deps.AuthLimiter, mw.GetIP))
		}
		r.Post("/users", h.PostUser)
		r.Post("/authentications", h.PostAuthentication)
		r.Put("/authentications", h.PutAuthentication)
		r.Delete("/authentications", h.DeleteAuthentication)
	})

	r.Get("/threads/{threadId}", h.GetThread)

	// Logged-in user routes
	r.Group(func(r chi.Router) {
		r.Use(authMw.NeedAuth())
		if deps.WriteLimiter != nil {
			r.Use(mw.RateLimit(deps.WriteLimiter, mw.GetUserID))
		}

		r.Post("/threads", h.PostThread)
		r.Post("/threads/{threadId}/comments", h.PostComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
		r.Post("/threads/{threadId}/comments/{commentId}/replies", h.PostReply)
		r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	})

	return r
}
