package handlers

import (
	"net/http"

	"khatreez/internal/logger"
	"khatreez/internal/services"

	"go.uber.org/zap"
)

type RevalidateHandler struct {
	revalidate *services.RevalidateService
}

func NewRevalidateHandler(revalidate *services.RevalidateService) *RevalidateHandler {
	return &RevalidateHandler{revalidate: revalidate}
}

// Trigger дёргает ревалидацию кеша фронтенда. Fire-and-forget для оператора:
// исход внешнего вызова виден только в логах, редирект назад — всегда.
func (h *RevalidateHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if err := h.revalidate.Trigger(r.Context()); err != nil {
		logger.WithCtx(r.Context()).Warn("Ревалидация фронтенда не удалась", zap.Error(err))
	}

	http.Redirect(w, r, "/admin/allblog", http.StatusFound)
}
