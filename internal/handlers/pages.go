package handlers

import (
	"net/http"

	"khatreez/internal/logger"
	"khatreez/internal/models"
	"khatreez/internal/reqctx"
	"khatreez/internal/services"
	"khatreez/internal/web"

	"go.uber.org/zap"
)

// PageHandler рендерит страницы админки. Все маршруты закрыты SessionAuth.
type PageHandler struct {
	blogService services.BlogService
	templates   *web.Templates
}

func NewPageHandler(blogService services.BlogService, templates *web.Templates) *PageHandler {
	return &PageHandler{blogService: blogService, templates: templates}
}

func (h *PageHandler) Uploads(w http.ResponseWriter, r *http.Request) {
	name, _ := reqctx.GetOperatorName(r.Context())
	web.Render(w, h.templates.Uploads, map[string]interface{}{
		"OperatorName": name,
	})
}

func (h *PageHandler) Register(w http.ResponseWriter, r *http.Request) {
	web.Render(w, h.templates.Register, nil)
}

// AllBlog — список всех статей, свежие сверху.
func (h *PageHandler) AllBlog(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.ListAll(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка получения списка для админки", zap.Error(err))
		blogs = []*models.Blog{}
	}

	web.Render(w, h.templates.AllBlog, map[string]interface{}{
		"Blogs": blogs,
	})
}
