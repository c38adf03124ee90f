package repository

import (
	"context"
	"errors"

	"khatreez/internal/logger"
	"khatreez/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BlogRepo interface {
	Create(ctx context.Context, b *models.Blog) (*models.Blog, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Blog, error)
	ListFeatured(ctx context.Context) ([]*models.Blog, error)
	ListAll(ctx context.Context) ([]*models.Blog, error)
	ListByStatus(ctx context.Context, status string, limit int) ([]*models.Blog, error)
	SearchByTitle(ctx context.Context, title string, limit int) ([]*models.Blog, error)
	GetByID(ctx context.Context, id int) (*models.Blog, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type blogRepo struct{ db *pgxpool.Pool }

func NewBlogRepo(db *pgxpool.Pool) BlogRepo { return &blogRepo{db: db} }

const blogColumns = `id, title, article, status, imageurl, main, datetime, slug`

func (r *blogRepo) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	const q = `
		INSERT INTO blogs (title, article, status, imageurl, main, datetime, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + blogColumns

	var out models.Blog
	err := r.db.QueryRow(ctx, q,
		b.Title,
		b.Article,
		b.Status,
		b.ImageURL,
		b.Main,
		b.Datetime,
		b.Slug,
	).Scan(
		&out.ID, &out.Title, &out.Article, &out.Status,
		&out.ImageURL, &out.Main, &out.Datetime, &out.Slug,
	)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка вставки статьи (repo)", zap.Error(err))
		return nil, err
	}
	return &out, nil
}

func (r *blogRepo) ListRecent(ctx context.Context, limit int) ([]*models.Blog, error) {
	const q = `SELECT ` + blogColumns + ` FROM blogs ORDER BY id DESC LIMIT $1`
	return r.queryList(ctx, q, limit)
}

func (r *blogRepo) ListFeatured(ctx context.Context) ([]*models.Blog, error) {
	const q = `SELECT ` + blogColumns + ` FROM blogs WHERE main = TRUE ORDER BY id DESC`
	return r.queryList(ctx, q)
}

func (r *blogRepo) ListAll(ctx context.Context) ([]*models.Blog, error) {
	const q = `SELECT ` + blogColumns + ` FROM blogs ORDER BY id DESC`
	return r.queryList(ctx, q)
}

func (r *blogRepo) ListByStatus(ctx context.Context, status string, limit int) ([]*models.Blog, error) {
	const q = `SELECT ` + blogColumns + ` FROM blogs WHERE status = $1 ORDER BY id DESC LIMIT $2`
	return r.queryList(ctx, q, status, limit)
}

func (r *blogRepo) SearchByTitle(ctx context.Context, title string, limit int) ([]*models.Blog, error) {
	const q = `SELECT ` + blogColumns + ` FROM blogs WHERE title ILIKE '%' || $1 || '%' ORDER BY id DESC LIMIT $2`
	return r.queryList(ctx, q, title, limit)
}

func (r *blogRepo) GetByID(ctx context.Context, id int) (*models.Blog, error) {
	const q = `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	var b models.Blog
	err := r.db.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.Title, &b.Article, &b.Status,
		&b.ImageURL, &b.Main, &b.Datetime, &b.Slug,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.WithCtx(ctx).Error("Ошибка получения статьи по id (repo)", zap.Int("blog_id", id), zap.Error(err))
		return nil, err
	}
	return &b, nil
}

// Delete возвращает число удалённых строк: удаление отсутствующего id — не ошибка.
func (r *blogRepo) Delete(ctx context.Context, id int) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка удаления статьи (repo)", zap.Int("blog_id", id), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *blogRepo) queryList(ctx context.Context, q string, args ...interface{}) ([]*models.Blog, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка выборки статей (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []*models.Blog{}
	for rows.Next() {
		var b models.Blog
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Article, &b.Status,
			&b.ImageURL, &b.Main, &b.Datetime, &b.Slug,
		); err != nil {
			return nil, err
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
