package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"khatreez/internal/config"
	"khatreez/internal/logger"
	"khatreez/internal/repository"
	"khatreez/internal/services"
	"khatreez/internal/utils"
	helpers "khatreez/internal/utils/helpers"
	"khatreez/internal/web"

	"go.uber.org/zap"
)

type AuthHandler struct {
	cfg         *config.Config
	authService *services.AuthService
	templates   *web.Templates
}

func NewAuthHandler(cfg *config.Config, authService *services.AuthService, templates *web.Templates) *AuthHandler {
	return &AuthHandler{
		cfg:         cfg,
		authService: authService,
		templates:   templates,
	}
}

// LoginPage отдаёт форму входа.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	web.Render(w, h.templates.Login, nil)
}

// Login принимает форму входа. Неуспех — редирект обратно на форму,
// без различия «нет такого имени» и «неверный пароль».
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидная форма")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	logger.WithCtx(r.Context()).Info("Попытка входа", zap.String("name", username))

	op, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		logger.WithCtx(r.Context()).Error("Ошибка входа", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	if err := h.setSessionCookie(w, op.ID); err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка создания сессии", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	http.Redirect(w, r, "/admin/uploads", http.StatusFound)
}

// Register создаёт оператора. Конфликт имени — 409, гонку закрывает
// UNIQUE-ограничение в БД.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидная форма")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		helpers.Error(w, http.StatusBadRequest, "Имя и пароль обязательны")
		return
	}

	op, err := h.authService.Register(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, repository.ErrOperatorExists) {
			helpers.Error(w, http.StatusConflict, "Имя уже занято")
			return
		}
		logger.WithCtx(r.Context()).Error("Ошибка регистрации оператора", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	if err := h.setSessionCookie(w, op.ID); err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка создания сессии", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	http.Redirect(w, r, "/admin/uploads", http.StatusFound)
}

// Logout сбрасывает куку сессии и возвращает на форму входа.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, operatorID int) error {
	ttl, err := time.ParseDuration(h.cfg.SessionTTL)
	if err != nil {
		ttl = 24 * time.Hour
	}

	token, err := utils.GenerateSessionToken(h.cfg.SessionSecret, operatorID, ttl)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
