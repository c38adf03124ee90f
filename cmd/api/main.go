package main

import (
	"net/http"

	_ "khatreez/docs"
	"khatreez/internal/app"
	"khatreez/internal/config"
	"khatreez/internal/logger"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Khatreez Public API
// @version 1.0
// @description Публичное read-only API блога (списки статей, избранное, поиск).
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("не удалось загрузить конфиг: " + err.Error())
	}
	logger.InitLogger(cfg, "api")
	defer logger.Log.Sync()

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Fatal("Невалидный конфиг", zap.Error(err))
	}
	for _, warn := range warnings {
		logger.Log.Warn("Конфиг: " + warn)
	}

	router, err := app.InitAPI(cfg)
	if err != nil {
		logger.Log.Fatal("Ошибка инициализации API", zap.Error(err))
	}

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Список разрешённых origin задаётся конфигом; пустой список — любой origin.
	corsOptions := cors.Options{
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}
	if len(cfg.CORSOrigins) > 0 {
		corsOptions.AllowedOrigins = cfg.CORSOrigins
		corsOptions.AllowCredentials = true
	} else {
		corsOptions.AllowedOrigins = []string{"*"}
	}
	corsMiddleware := cors.New(corsOptions)

	logger.Log.Info("Публичное API запущено", zap.String("port", cfg.APIPort))

	if err := http.ListenAndServe(":"+cfg.APIPort, corsMiddleware.Handler(router)); err != nil {
		logger.Log.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
