package main

import (
	"net/http"

	"khatreez/internal/app"
	"khatreez/internal/config"
	"khatreez/internal/logger"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("не удалось загрузить конфиг: " + err.Error())
	}
	logger.InitLogger(cfg, "admin")
	defer logger.Log.Sync()

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Fatal("Невалидный конфиг", zap.Error(err))
	}
	for _, warn := range warnings {
		logger.Log.Warn("Конфиг: " + warn)
	}

	router, err := app.InitAdmin(cfg)
	if err != nil {
		logger.Log.Fatal("Ошибка инициализации админки", zap.Error(err))
	}

	// Админка работает из браузера с форм, preflight почти не нужен,
	// но заголовки оставляем как у остальных сервисов.
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
	})

	logger.Log.Info("Админка запущена", zap.String("port", cfg.AdminPort))

	if err := http.ListenAndServe(":"+cfg.AdminPort, corsMiddleware.Handler(router)); err != nil {
		logger.Log.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
