package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sandeepkv93/lost-and-found-backend/internal/health"
	"github.com/sandeepkv93/lost-and-found-backend/internal/http/handler"
	"github.com/sandeepkv93/lost-and-found-backend/internal/http/middleware"
	"github.com/sandeepkv93/lost-and-found-backend/internal/http/response"
	"github.com/sandeepkv93/lost-and-found-backend/internal/service"
)

const (
	jsonBodyLimit  = 1 << 20
	photoBodyLimit = service.MaxPhotoSize + 1<<20
)

type Dependencies struct {
	AuthHandler     *handler.AuthHandler
	OwnerHandler    *handler.OwnerHandler
	LostItemHandler *handler.LostItemHandler
	TokenParser     middleware.TokenParser
	CORSOrigins     []string

	AuthRateLimitRPM  int
	APIRateLimitRPM   int
	GlobalRateLimiter GlobalRateLimiterFunc
	AuthRateLimiter   AuthRateLimiterFunc

	Readiness      *health.ProbeRunner
	EnableOTelHTTP bool
}

type GlobalRateLimiterFunc func(http.Handler) http.Handler
type AuthRateLimiterFunc func(http.Handler) http.Handler

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(dep.CORSOrigins))
	if dep.GlobalRateLimiter != nil {
		r.Use(dep.GlobalRateLimiter)
	} else if dep.APIRateLimitRPM > 0 {
		r.Use(middleware.NewRateLimiter(dep.APIRateLimitRPM, time.Minute).Middleware())
	}

	authLimiter := dep.AuthRateLimiter
	if authLimiter == nil {
		if dep.AuthRateLimitRPM > 0 {
			authLimiter = middleware.NewRateLimiter(dep.AuthRateLimitRPM, time.Minute).Middleware()
		} else {
			authLimiter = func(next http.Handler) http.Handler { return next }
		}
	}
	jsonBody := middleware.BodyLimit(jsonBodyLimit)
	requireAuth := middleware.AuthMiddleware(dep.TokenParser)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"message": "Backend running"})
	})
	r.Get("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if dep.Readiness == nil {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": []any{}})
			return
		}
		ready, results := dep.Readiness.Ready(r.Context())
		if ready {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": results})
			return
		}
		response.Error(w, r, http.StatusServiceUnavailable, "DEPENDENCY_UNREADY", "dependencies are not ready", map[string]any{"checks": results})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(authLimiter, jsonBody).Post("/register", dep.AuthHandler.Register)
			r.With(authLimiter, jsonBody).Post("/login", dep.AuthHandler.Login)
			r.With(requireAuth).Get("/profile", dep.AuthHandler.Profile)
		})

		r.Route("/owners", func(r chi.Router) {
			r.Use(jsonBody)
			r.Post("/", dep.OwnerHandler.Create)
			r.Get("/", dep.OwnerHandler.List)
			r.Get("/{id}", dep.OwnerHandler.GetByID)
			r.Put("/{id}", dep.OwnerHandler.Update)
			r.Delete("/{id}", dep.OwnerHandler.DeleteByID)
			r.Get("/{id}/items", dep.OwnerHandler.ListItems)
		})

		r.Route("/items", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(jsonBody)
				r.Post("/", dep.LostItemHandler.Create)
				r.Get("/", dep.LostItemHandler.List)
				r.Get("/{id}", dep.LostItemHandler.GetByID)
				r.Put("/{id}", dep.LostItemHandler.Update)
				r.Delete("/{id}", dep.LostItemHandler.DeleteByID)
				r.Delete("/{id}/photo", dep.LostItemHandler.DeletePhoto)
			})
			r.With(middleware.BodyLimit(photoBodyLimit)).Put("/{id}/photo", dep.LostItemHandler.UploadPhoto)
		})

		r.NotFound(apiNotFound)
		r.MethodNotAllowed(apiMethodNotAllowed)
	})

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}

func apiNotFound(w http.ResponseWriter, r *http.Request) {
	response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "api route not found", map[string]string{"path": r.URL.Path})
}

func apiMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api") {
		response.Error(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", map[string]string{"path": r.URL.Path})
		return
	}
	w.WriteHeader(http.StatusMethodNotAllowed)
}
