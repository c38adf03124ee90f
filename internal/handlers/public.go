package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"khatreez/internal/logger"
	"khatreez/internal/repository"
	"khatreez/internal/services"
	"khatreez/internal/utils"
	helpers "khatreez/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// PublicHandler — анонимное read-only API для публичного фронтенда.
type PublicHandler struct {
	blogService services.BlogService
}

func NewPublicHandler(blogService services.BlogService) *PublicHandler {
	return &PublicHandler{blogService: blogService}
}

// Root godoc
// @Summary Приветствие API
// @Tags public
// @Produce json
// @Success 200 {string} string
// @Router / [get]
func (h *PublicHandler) Root(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, "This is Khatreez Server.")
}

// ListRecent godoc
// @Summary Последние статьи
// @Tags public
// @Produce json
// @Param limit path string true "Лимит выборки; нечисловое значение — 10"
// @Success 200 {array} models.Blog
// @Router /data/blogdisplay/{limit} [get]
func (h *PublicHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseLimit(mux.Vars(r)["limit"], services.DefaultListLimit)

	list, err := h.blogService.ListRecent(r.Context(), limit)
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// ListFeatured godoc
// @Summary Избранные статьи (main = true)
// @Tags public
// @Produce json
// @Success 200 {array} models.Blog
// @Router /data/blogmain [get]
func (h *PublicHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	list, err := h.blogService.ListFeatured(r.Context())
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// ComponentFeed godoc
// @Summary Лента из четырёх свежих статей
// @Tags public
// @Produce json
// @Success 200 {array} models.Blog
// @Router /data/blogcomponent [get]
func (h *PublicHandler) ComponentFeed(w http.ResponseWriter, r *http.Request) {
	list, err := h.blogService.ListComponentFeed(r.Context())
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID godoc
// @Summary Статья по id
// @Tags public
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {array} models.Blog "Массив из одного элемента"
// @Failure 400 {string} string "Невалидный id"
// @Failure 404 {string} string "Статья не найдена"
// @Router /data/article/{id} [get]
func (h *PublicHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный id статьи")
		return
	}

	b, err := h.blogService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.Error(w, http.StatusNotFound, "Статья не найдена")
			return
		}
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	// Фронтенд ожидает массив из одного элемента, как отдаёт выборка по id.
	helpers.JSON(w, http.StatusOK, []interface{}{b})
}

// FilterByStatus godoc
// @Summary Статьи с заданным статусом
// @Tags public
// @Produce json
// @Param type path string true "Статус (точное совпадение)"
// @Param limit path string true "Лимит выборки; нечисловое значение — 10"
// @Success 200 {array} models.Blog "Пустой список — тоже 200"
// @Failure 400 {string} string "Пустой статус"
// @Router /articles/filter/{type}/{limit} [get]
func (h *PublicHandler) FilterByStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	status := strings.TrimSpace(vars["type"])
	if status == "" {
		helpers.Error(w, http.StatusBadRequest, "Статус обязателен")
		return
	}
	limit := utils.ParseLimit(vars["limit"], services.DefaultListLimit)

	list, err := h.blogService.FilterByStatus(r.Context(), status, limit)
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	// Пустая выборка — 200 и пустой массив, единообразно с остальными списками.
	helpers.JSON(w, http.StatusOK, list)
}

// SearchByTitle godoc
// @Summary Поиск по заголовку (до пяти результатов)
// @Tags public
// @Produce json
// @Param title path string true "Подстрока заголовка, без учёта регистра"
// @Success 200 {array} models.Blog
// @Failure 400 {string} string "Пустой запрос"
// @Router /search/article/{title} [get]
func (h *PublicHandler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(mux.Vars(r)["title"])
	if title == "" {
		helpers.Error(w, http.StatusBadRequest, "Поисковый запрос обязателен")
		return
	}

	list, err := h.blogService.SearchByTitle(r.Context(), title)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка поиска", zap.String("title", title), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}
