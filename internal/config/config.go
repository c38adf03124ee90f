package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AdminPort string
	APIPort   string

	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	SessionSecret string
	SessionTTL    string

	Log      string
	LogLevel string
	Env      string // dev|prod

	FrontendURL      string
	RevalidateSecret string

	CORSOrigins []string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		AdminPort: def(os.Getenv("ADMIN_PORT"), def(os.Getenv("PORT"), "5000")),
		APIPort:   def(os.Getenv("API_PORT"), def(os.Getenv("PORT"), "4000")),

		DbHost: os.Getenv("DB_HOST"),
		DbPort: def(os.Getenv("DB_PORT"), "5432"),
		DbUser: os.Getenv("DB_USER"),
		DbPass: os.Getenv("DB_PASSWORD"),
		DbName: os.Getenv("DB_NAME"),
		// Исходная инсталляция ходила в БД по TLS без проверки сертификата,
		// поэтому дефолт — require (шифрование без верификации CA).
		// Для локальной разработки ставьте DB_SSLMODE=disable.
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "require"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    def(os.Getenv("SESSION_TTL"), "24h"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		FrontendURL:      strings.TrimRight(os.Getenv("FRONTEND_URL"), "/"),
		RevalidateSecret: os.Getenv("REVALIDATE_SECRET"),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	// Критичные: БД
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}

	if strings.TrimSpace(c.SessionSecret) == "" {
		warnings = append(warnings, "SESSION_SECRET is empty")
	}

	if c.FrontendURL == "" || c.RevalidateSecret == "" {
		warnings = append(warnings, "revalidation is not fully configured (FRONTEND_URL/REVALIDATE_SECRET)")
	}

	if len(c.CORSOrigins) == 0 {
		warnings = append(warnings, "CORS_ORIGINS is empty, public API will allow any origin")
	}

	return warnings, nil
}

// GetDSN — полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe — DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
