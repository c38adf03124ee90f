package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"khatreez/internal/logger"

	"go.uber.org/zap"
)

// RevalidateService дёргает эндпоинт сброса кеша внешнего фронтенда.
// Секрет передаётся query-параметром — так его ожидает фронтенд.
type RevalidateService struct {
	FrontendURL string
	Secret      string
	HTTPClient  *http.Client
}

func NewRevalidateService(frontendURL, secret string) *RevalidateService {
	return &RevalidateService{
		FrontendURL: frontendURL,
		Secret:      secret,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Trigger выполняет исходящий запрос ревалидации. Ошибку возвращаем только
// для логирования: вызывающий хендлер в любом случае редиректит оператора назад.
func (s *RevalidateService) Trigger(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/api/revalidate?secret=%s", s.FrontendURL, url.QueryEscape(s.Secret))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ревалидация вернула статус %d", resp.StatusCode)
	}

	logger.WithCtx(ctx).Info("Кеш фронтенда ревалидирован", zap.String("frontend", s.FrontendURL))
	return nil
}
