package app

import (
	"khatreez/internal/config"
	"khatreez/internal/db"
	"khatreez/internal/handlers"
	"khatreez/internal/middleware"
	"khatreez/internal/repository"
	"khatreez/internal/routes"
	"khatreez/internal/services"
	"khatreez/internal/web"

	"github.com/gorilla/mux"
)

// InitAdmin собирает сервис админки. Миграции накатывает именно он:
// админка — единственный писатель схемы.
func InitAdmin(cfg *config.Config) (*mux.Router, error) {
	if err := db.RunMigrations(cfg); err != nil {
		return nil, err
	}

	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	templates, err := web.LoadTemplates()
	if err != nil {
		return nil, err
	}

	// Репозитории
	operatorRepo := repository.NewOperatorRepo(conn)
	blogRepo := repository.NewBlogRepo(conn)

	// Сервисы
	authService := services.NewAuthService(operatorRepo)
	blogService := services.NewBlogService(blogRepo)
	revalidateService := services.NewRevalidateService(cfg.FrontendURL, cfg.RevalidateSecret)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(cfg, authService, templates)
	pageHandler := handlers.NewPageHandler(blogService, templates)
	blogHandler := handlers.NewBlogAdminHandler(blogService)
	revalidateHandler := handlers.NewRevalidateHandler(revalidateService)
	healthHandler := handlers.NewHealthHandler(conn)

	session := middleware.NewSessionAuth(cfg, authService)

	router := mux.NewRouter()
	routes.InitAdminRoutes(router, authHandler, pageHandler, blogHandler, revalidateHandler, healthHandler, session)

	return router, nil
}

// InitAPI собирает публичное read-only API.
func InitAPI(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	blogRepo := repository.NewBlogRepo(conn)
	blogService := services.NewBlogService(blogRepo)

	publicHandler := handlers.NewPublicHandler(blogService)
	healthHandler := handlers.NewHealthHandler(conn)

	router := mux.NewRouter()
	routes.InitPublicRoutes(router, publicHandler, healthHandler)

	return router, nil
}
