package services

import (
	"context"
	"errors"
	"testing"

	"khatreez/internal/models"
	"khatreez/internal/repository"
	"khatreez/internal/utils"
)

// Мок-репозиторий (заглушка)
type mockOperatorRepo struct {
	operators map[string]*models.Operator
	nextID    int
}

func newMockOperatorRepo() *mockOperatorRepo {
	return &mockOperatorRepo{operators: make(map[string]*models.Operator), nextID: 1}
}

func (m *mockOperatorRepo) Create(_ context.Context, name, passwordHash string) (*models.Operator, error) {
	if _, exists := m.operators[name]; exists {
		return nil, repository.ErrOperatorExists
	}
	op := &models.Operator{ID: m.nextID, Name: name, PasswordHash: passwordHash}
	m.nextID++
	m.operators[name] = op
	return op, nil
}

func (m *mockOperatorRepo) GetByName(_ context.Context, name string) (*models.Operator, error) {
	op, ok := m.operators[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return op, nil
}

func (m *mockOperatorRepo) GetByID(_ context.Context, id int) (*models.Operator, error) {
	for _, op := range m.operators {
		if op.ID == id {
			return op, nil
		}
	}
	return nil, repository.ErrNotFound
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newMockOperatorRepo()
	service := NewAuthService(repo)

	op, err := service.Register(context.Background(), "editor", "secret")
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}
	if op.PasswordHash == "" || op.PasswordHash == "secret" {
		t.Fatal("пароль не захеширован")
	}

	logged, err := service.Login(context.Background(), "editor", "secret")
	if err != nil {
		t.Fatalf("ошибка логина после регистрации: %v", err)
	}
	if logged.ID != op.ID {
		t.Fatalf("залогинен не тот оператор: %d != %d", logged.ID, op.ID)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	repo := newMockOperatorRepo()
	service := NewAuthService(repo)

	if _, err := service.Register(context.Background(), "editor", "secret"); err != nil {
		t.Fatalf("ошибка первой регистрации: %v", err)
	}

	_, err := service.Register(context.Background(), "editor", "another")
	if !errors.Is(err, repository.ErrOperatorExists) {
		t.Fatalf("ожидался конфликт имени, получено: %v", err)
	}
	if len(repo.operators) != 1 {
		t.Fatalf("создана вторая запись оператора: %d", len(repo.operators))
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newMockOperatorRepo()
	service := NewAuthService(repo)

	hashed, _ := utils.HashPassword("secret")
	repo.operators["editor"] = &models.Operator{ID: 1, Name: "editor", PasswordHash: hashed}

	// Неизвестное имя и неверный пароль дают одну и ту же ошибку.
	_, errUnknown := service.Login(context.Background(), "ghost", "secret")
	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("ожидался ErrInvalidCredentials для неизвестного имени, получено: %v", errUnknown)
	}

	_, errWrongPass := service.Login(context.Background(), "editor", "wrong")
	if !errors.Is(errWrongPass, ErrInvalidCredentials) {
		t.Fatalf("ожидался ErrInvalidCredentials для неверного пароля, получено: %v", errWrongPass)
	}

	if errUnknown.Error() != errWrongPass.Error() {
		t.Fatal("тексты ошибок различаются — утечка информации о существовании имени")
	}
}
