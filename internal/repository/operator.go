package repository

import (
	"context"
	"errors"

	"khatreez/internal/logger"
	"khatreez/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	// ErrNotFound — запрошенной строки нет.
	ErrNotFound = errors.New("не найдено")
	// ErrOperatorExists — оператор с таким именем уже зарегистрирован.
	// Вычисляется из нарушения UNIQUE-ограничения, а не через check-then-insert:
	// так конкурентные регистрации одного имени не создают дубликат.
	ErrOperatorExists = errors.New("оператор уже существует")
)

type OperatorRepo interface {
	Create(ctx context.Context, name, passwordHash string) (*models.Operator, error)
	GetByName(ctx context.Context, name string) (*models.Operator, error)
	GetByID(ctx context.Context, id int) (*models.Operator, error)
}

type operatorRepo struct{ db *pgxpool.Pool }

func NewOperatorRepo(db *pgxpool.Pool) OperatorRepo { return &operatorRepo{db: db} }

const uniqueViolation = "23505"

func (r *operatorRepo) Create(ctx context.Context, name, passwordHash string) (*models.Operator, error) {
	logger.WithCtx(ctx).Debug("Создание оператора (repo)", zap.String("name", name))

	const q = `INSERT INTO admin (name, password) VALUES ($1, $2) RETURNING id, name, password`

	var op models.Operator
	err := r.db.QueryRow(ctx, q, name, passwordHash).Scan(&op.ID, &op.Name, &op.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrOperatorExists
		}
		logger.WithCtx(ctx).Error("Ошибка создания оператора (repo)", zap.Error(err))
		return nil, err
	}
	return &op, nil
}

func (r *operatorRepo) GetByName(ctx context.Context, name string) (*models.Operator, error) {
	logger.WithCtx(ctx).Debug("Получение оператора по имени (repo)", zap.String("name", name))

	const q = `SELECT id, name, password FROM admin WHERE name = $1`

	var op models.Operator
	err := r.db.QueryRow(ctx, q, name).Scan(&op.ID, &op.Name, &op.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.WithCtx(ctx).Error("Ошибка получения оператора по имени (repo)", zap.Error(err))
		return nil, err
	}
	return &op, nil
}

func (r *operatorRepo) GetByID(ctx context.Context, id int) (*models.Operator, error) {
	const q = `SELECT id, name, password FROM admin WHERE id = $1`

	var op models.Operator
	err := r.db.QueryRow(ctx, q, id).Scan(&op.ID, &op.Name, &op.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.WithCtx(ctx).Error("Ошибка получения оператора по id (repo)", zap.Int("operator_id", id), zap.Error(err))
		return nil, err
	}
	return &op, nil
}
