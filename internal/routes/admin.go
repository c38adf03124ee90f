package routes

import (
	"net/http"

	"khatreez/internal/handlers"
	"khatreez/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitAdminRoutes(
	router *mux.Router,
	authHandler *handlers.AuthHandler,
	pageHandler *handlers.PageHandler,
	blogHandler *handlers.BlogAdminHandler,
	revalidateHandler *handlers.RevalidateHandler,
	healthHandler *handlers.HealthHandler,
	session *middleware.SessionAuth,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)
	router.Use(middleware.Metrics("admin"))

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/healthz", healthHandler.Healthz).Methods("GET")

	// --- Открытые маршруты ---
	router.HandleFunc("/", authHandler.LoginPage).Methods("GET")
	router.HandleFunc("/admin/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/admin/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/admin/logout", authHandler.Logout).Methods("GET")

	// --- Страницы под сессией: без неё редирект на форму входа ---
	router.Handle("/admin/uploads",
		session.RequirePage(http.HandlerFunc(pageHandler.Uploads))).Methods("GET")
	router.Handle("/admin/register",
		session.RequirePage(http.HandlerFunc(pageHandler.Register))).Methods("GET")
	router.Handle("/admin/allblog",
		session.RequirePage(http.HandlerFunc(pageHandler.AllBlog))).Methods("GET")
	router.Handle("/admin/revalidate",
		session.RequirePage(http.HandlerFunc(revalidateHandler.Trigger))).Methods("GET")

	// --- Data-маршруты под сессией: без неё явный 401 ---
	router.Handle("/admin/data",
		session.RequireAPI(http.HandlerFunc(blogHandler.Create))).Methods("POST")
	router.Handle("/admin/delete/{id:[0-9]+}",
		session.RequireAPI(http.HandlerFunc(blogHandler.Delete))).Methods("DELETE")
}
