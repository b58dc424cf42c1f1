package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/GoldenRodger5/nutrivize-sub004/controllers"
	auth "github.com/GoldenRodger5/nutrivize-sub004/middleware"
)

func SetupRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public
	r.Post("/auth/register", controllers.Register)
	r.Post("/auth/login", controllers.Login)

	// The ad-hoc scorer and wizard preview are stateless; the client
	// uses them before an account exists.
	r.Post("/score", controllers.ScoreAdhoc)
	r.Post("/targets/preview", controllers.PreviewTargets)

	// Authenticated
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/profile", controllers.GetProfile)
		r.Put("/profile", controllers.UpdateProfile)

		r.Put("/targets", controllers.SaveTargets)

		r.Get("/foods", controllers.ListFoods)
		r.Post("/foods", controllers.CreateFood)
		r.Get("/foods/{food_id}", controllers.GetFood)
		r.Delete("/foods/{food_id}", controllers.DeleteFood)
		r.Get("/foods/{food_id}/score", controllers.ScoreFood)

		r.Get("/logs", controllers.ListLogs)
		r.Post("/logs", controllers.CreateLog)
		r.Delete("/logs/{log_id}", controllers.DeleteLog)
		r.Get("/logs/summary", controllers.DailySummary)

		r.Get("/favorites", controllers.ListFavorites)
		r.Post("/favorites", controllers.AddFavorite)
		r.Delete("/favorites/{food_id}", controllers.RemoveFavorite)
	})

	// Server-Sent Events for nutrition enrichment updates
	r.Get("/sse/foods", FoodUpdatesSSE)

	return r
}
