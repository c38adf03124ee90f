package web

import (
	"embed"
	"html/template"
	"net/http"

	"khatreez/internal/logger"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates — минимальные страницы админки. Полноценный UI живёт отдельно,
// здесь только формы, достаточные для работы операторов.
type Templates struct {
	Login    *template.Template
	Register *template.Template
	Uploads  *template.Template
	AllBlog  *template.Template
}

func LoadTemplates() (*Templates, error) {
	parse := func(name string) (*template.Template, error) {
		return template.ParseFS(templateFS, "templates/"+name)
	}

	login, err := parse("login.html")
	if err != nil {
		return nil, err
	}
	register, err := parse("register.html")
	if err != nil {
		return nil, err
	}
	uploads, err := parse("uploads.html")
	if err != nil {
		return nil, err
	}
	allblog, err := parse("allblog.html")
	if err != nil {
		return nil, err
	}

	return &Templates{
		Login:    login,
		Register: register,
		Uploads:  uploads,
		AllBlog:  allblog,
	}, nil
}

// Render пишет страницу; ошибку шаблона наружу не отдаём, только логируем.
func Render(w http.ResponseWriter, t *template.Template, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		logger.Log.Error("Ошибка рендера шаблона", zap.String("template", t.Name()), zap.Error(err))
	}
}
