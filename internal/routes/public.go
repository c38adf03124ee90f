package routes

import (
	"khatreez/internal/handlers"
	"khatreez/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitPublicRoutes(
	router *mux.Router,
	publicHandler *handlers.PublicHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)
	router.Use(middleware.Metrics("api"))

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/healthz", healthHandler.Healthz).Methods("GET")

	router.HandleFunc("/", publicHandler.Root).Methods("GET")
	router.HandleFunc("/data/blogdisplay/{limit}", publicHandler.ListRecent).Methods("GET")
	router.HandleFunc("/data/blogmain", publicHandler.ListFeatured).Methods("GET")
	router.HandleFunc("/data/blogcomponent", publicHandler.ComponentFeed).Methods("GET")
	router.HandleFunc("/data/article/{id}", publicHandler.GetByID).Methods("GET")
	router.HandleFunc("/articles/filter/{type}/{limit}", publicHandler.FilterByStatus).Methods("GET")
	router.HandleFunc("/search/article/{title}", publicHandler.SearchByTitle).Methods("GET")
}
