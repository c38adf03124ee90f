package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"khatreez/internal/logger"
	"khatreez/internal/models"
	"khatreez/internal/repository"
	"khatreez/internal/utils"

	"go.uber.org/zap"
)

// ErrMissingFields — не заполнено одно из обязательных полей формы статьи.
var ErrMissingFields = errors.New("все поля обязательны")

const (
	// DefaultListLimit — лимит выборки, когда параметр отсутствует или нечисловой.
	DefaultListLimit = 10
	// ComponentFeedSize — размер ленты для блока на главной странице фронтенда.
	ComponentFeedSize = 4
	// SearchLimit — максимум результатов поиска по заголовку.
	SearchLimit = 5
)

type BlogService interface {
	Create(ctx context.Context, req models.CreateBlogRequest) (*models.Blog, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Blog, error)
	ListFeatured(ctx context.Context) ([]*models.Blog, error)
	ListComponentFeed(ctx context.Context) ([]*models.Blog, error)
	ListAll(ctx context.Context) ([]*models.Blog, error)
	FilterByStatus(ctx context.Context, status string, limit int) ([]*models.Blog, error)
	SearchByTitle(ctx context.Context, title string) ([]*models.Blog, error)
	GetByID(ctx context.Context, id int) (*models.Blog, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type blogService struct {
	repo repository.BlogRepo
	now  func() time.Time
}

func NewBlogService(repo repository.BlogRepo) BlogService {
	return &blogService{repo: repo, now: time.Now}
}

func (s *blogService) Create(ctx context.Context, req models.CreateBlogRequest) (*models.Blog, error) {
	log := logger.WithCtx(ctx)

	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.Article) == "" ||
		strings.TrimSpace(req.Status) == "" || strings.TrimSpace(req.ImageURL) == "" {
		log.Warn("Валидация не пройдена: пустые обязательные поля",
			zap.String("title", title),
			zap.String("status", req.Status),
		)
		return nil, ErrMissingFields
	}

	b := &models.Blog{
		Title:    req.Title,
		Article:  req.Article,
		Status:   req.Status,
		ImageURL: req.ImageURL,
		Main:     utils.ParseCheckbox(req.Check),
		Datetime: utils.DisplayDate(s.now()),
		Slug:     utils.Slugify(req.Title),
	}

	// Дубликаты заголовков и слагов допустимы, проверки существования нет.
	created, err := s.repo.Create(ctx, b)
	if err != nil {
		log.Error("Ошибка создания статьи (service)", zap.Error(err))
		return nil, err
	}

	log.Info("Статья создана",
		zap.Int("blog_id", created.ID),
		zap.String("slug", created.Slug),
		zap.Bool("main", created.Main),
	)
	return created, nil
}

func (s *blogService) ListRecent(ctx context.Context, limit int) ([]*models.Blog, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	list, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения списка статей (service)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *blogService) ListFeatured(ctx context.Context) ([]*models.Blog, error) {
	list, err := s.repo.ListFeatured(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения избранных статей (service)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *blogService) ListComponentFeed(ctx context.Context) ([]*models.Blog, error) {
	list, err := s.repo.ListRecent(ctx, ComponentFeedSize)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения ленты компонента (service)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *blogService) ListAll(ctx context.Context) ([]*models.Blog, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения всех статей (service)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *blogService) FilterByStatus(ctx context.Context, status string, limit int) ([]*models.Blog, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	list, err := s.repo.ListByStatus(ctx, strings.TrimSpace(status), limit)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка фильтрации по статусу (service)",
			zap.String("status", status), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *blogService) SearchByTitle(ctx context.Context, title string) ([]*models.Blog, error) {
	list, err := s.repo.SearchByTitle(ctx, strings.TrimSpace(title), SearchLimit)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка поиска по заголовку (service)",
			zap.String("title", title), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *blogService) GetByID(ctx context.Context, id int) (*models.Blog, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.WithCtx(ctx).Warn("Статья не найдена (service)", zap.Int("blog_id", id))
		} else {
			logger.WithCtx(ctx).Error("Ошибка получения статьи (service)", zap.Int("blog_id", id), zap.Error(err))
		}
		return nil, err
	}
	return b, nil
}

// Delete идемпотентно: отсутствующий id — это deleted=false без ошибки.
func (s *blogService) Delete(ctx context.Context, id int) (bool, error) {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка удаления статьи (service)", zap.Int("blog_id", id), zap.Error(err))
		return false, err
	}
	logger.WithCtx(ctx).Info("Статья удалена", zap.Int("blog_id", id), zap.Int64("rows", affected))
	return affected > 0, nil
}
