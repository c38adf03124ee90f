package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"khatreez/internal/config"
	"khatreez/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations накатывает встроенные миграции при старте сервиса.
// Отдельное соединение через database/sql: golang-migrate не умеет pgxpool.
func RunMigrations(cfg *config.Config) error {
	conn, err := sql.Open("pgx", cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("открытие соединения для миграций: %w", err)
	}
	defer conn.Close()

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("инициализация драйвера миграций: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("чтение встроенных миграций: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("создание мигратора: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("применение миграций: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("получение версии миграций: %w", err)
	}

	logger.Log.Info("Миграции применены",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}
