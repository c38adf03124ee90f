package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"khatreez/internal/logger"
	"khatreez/internal/models"
	"khatreez/internal/services"
	helpers "khatreez/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type BlogAdminHandler struct {
	blogService services.BlogService
}

func NewBlogAdminHandler(blogService services.BlogService) *BlogAdminHandler {
	return &BlogAdminHandler{blogService: blogService}
}

type createBlogResponse struct {
	Message string       `json:"message"`
	Blog    *models.Blog `json:"blog"`
}

// Create принимает форму статьи из админки.
// Дата и слаг выводятся на сервере, чекбокс "check" приходит строкой "on".
func (h *BlogAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидная форма")
		return
	}

	req := models.CreateBlogRequest{
		Title:    r.FormValue("title"),
		Article:  r.FormValue("article"),
		Status:   r.FormValue("status"),
		ImageURL: r.FormValue("imageurl"),
		Check:    r.FormValue("check"),
	}

	created, err := h.blogService.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			helpers.Error(w, http.StatusBadRequest, "Все поля обязательны")
			return
		}
		logger.WithCtx(r.Context()).Error("Ошибка создания статьи", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	helpers.JSON(w, http.StatusOK, createBlogResponse{
		Message: "Статья добавлена",
		Blog:    created,
	})
}

type deleteBlogResponse struct {
	Success bool `json:"success"`
}

// Delete удаляет статью по id. Удаление идемпотентно: отсутствующий id — тоже
// успех, флаг success отражает только судьбу запроса, не наличие строки.
func (h *BlogAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный id статьи")
		return
	}

	if _, err := h.blogService.Delete(r.Context(), id); err != nil {
		// Причину наружу не отдаём, она остаётся в логах.
		helpers.JSON(w, http.StatusInternalServerError, deleteBlogResponse{Success: false})
		return
	}

	helpers.JSON(w, http.StatusOK, deleteBlogResponse{Success: true})
}
