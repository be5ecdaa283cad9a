package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/bloglist-be/internal/api/handlers"
	"github.com/isdelr/bloglist-be/internal/auth"
	"github.com/isdelr/bloglist-be/internal/services"
	"github.com/isdelr/bloglist-be/internal/websocket"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(hub *websocket.Hub, tokens *auth.TokenManager, blogService services.BlogServiceProvider, userService services.UserServiceProvider, eventService services.EventServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Best-effort identity resolution; handlers decide what absence means.
	r.Use(auth.Identify(tokens, userService))

	// Registered before the subrouters are mounted so they inherit it.
	r.NotFound(handlers.UnknownEndpoint)

	// Initialize handlers
	blogHandler := handlers.NewBlogHandler(blogService)
	userHandler := handlers.NewUserHandler(userService)
	loginHandler := handlers.NewLoginHandler(userService, tokens)
	eventHandler := handlers.NewEventHandler(eventService)
	wsHandler := handlers.NewWebSocketHandler(hub)

	r.Route("/api", func(r chi.Router) {
		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", blogHandler.GetAll)
			r.Post("/", blogHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", blogHandler.Get)
				r.Put("/", blogHandler.Update)
				r.Delete("/", blogHandler.Delete)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.GetAll)
			r.Post("/", userHandler.Register)
		})

		r.Post("/login", loginHandler.Login)

		r.Get("/events", eventHandler.GetRecent)

		// Live activity feed
		r.Get("/ws", wsHandler.Serve)
	})

	return r
}
