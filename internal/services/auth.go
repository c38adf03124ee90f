package services

import (
	"context"
	"errors"

	"khatreez/internal/logger"
	"khatreez/internal/models"
	"khatreez/internal/repository"
	"khatreez/internal/utils"

	"go.uber.org/zap"
)

// ErrInvalidCredentials — единый ответ и для неизвестного имени, и для неверного
// пароля: наружу причина отказа не различается, чтобы нельзя было перебирать имена.
var ErrInvalidCredentials = errors.New("неверное имя или пароль")

type AuthService struct {
	repo repository.OperatorRepo
}

func NewAuthService(repo repository.OperatorRepo) *AuthService {
	return &AuthService{repo: repo}
}

// Register хеширует пароль и создаёт оператора. Конфликт имени приходит из
// репозитория как repository.ErrOperatorExists (UNIQUE-ограничение в БД).
func (s *AuthService) Register(ctx context.Context, name, password string) (*models.Operator, error) {
	log := logger.WithCtx(ctx)
	log.Info("Регистрация оператора (service)", zap.String("name", name))

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	op, err := s.repo.Create(ctx, name, hashed)
	if err != nil {
		if errors.Is(err, repository.ErrOperatorExists) {
			log.Warn("Имя оператора уже занято (service)", zap.String("name", name))
			return nil, err
		}
		log.Error("Ошибка создания оператора (service)", zap.Error(err))
		return nil, err
	}

	log.Info("Оператор зарегистрирован (service)", zap.Int("operator_id", op.ID))
	return op, nil
}

// Login проверяет пару имя/пароль и возвращает оператора.
func (s *AuthService) Login(ctx context.Context, name, password string) (*models.Operator, error) {
	log := logger.WithCtx(ctx)
	log.Info("Попытка входа (service)", zap.String("name", name))

	op, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Оператор не найден (service)", zap.String("name", name))
			return nil, ErrInvalidCredentials
		}
		log.Error("Ошибка поиска оператора (service)", zap.Error(err))
		return nil, err
	}

	if !utils.CheckPasswordHash(password, op.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.String("name", name))
		return nil, ErrInvalidCredentials
	}

	log.Info("Вход выполнен (service)", zap.Int("operator_id", op.ID))
	return op, nil
}

// GetOperator перечитывает оператора по id. Вызывается middleware на каждый
// запрос: в сессии хранится только id, строка из БД не кешируется.
func (s *AuthService) GetOperator(ctx context.Context, id int) (*models.Operator, error) {
	return s.repo.GetByID(ctx, id)
}
