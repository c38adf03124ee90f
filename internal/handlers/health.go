package handlers

import (
	"net/http"

	helpers "khatreez/internal/utils/helpers"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	db *pgxpool.Pool
}

func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz проверяет доступность БД.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		helpers.Error(w, http.StatusServiceUnavailable, "БД недоступна")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
