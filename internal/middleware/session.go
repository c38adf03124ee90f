package middleware

import (
	"context"
	"net/http"

	"khatreez/internal/config"
	"khatreez/internal/logger"
	"khatreez/internal/models"
	"khatreez/internal/reqctx"
	"khatreez/internal/services"
	"khatreez/internal/utils"
	helpers "khatreez/internal/utils/helpers"

	"go.uber.org/zap"
)

// SessionAuth проверяет куку сессии и на каждый запрос перечитывает оператора
// из БД по id. Удалённый или переименованный оператор теряет доступ сразу,
// а не по истечении токена.
type SessionAuth struct {
	cfg  *config.Config
	auth *services.AuthService
}

func NewSessionAuth(cfg *config.Config, auth *services.AuthService) *SessionAuth {
	return &SessionAuth{cfg: cfg, auth: auth}
}

func (m *SessionAuth) resolve(r *http.Request) (*models.Operator, bool) {
	cookie, err := r.Cookie(utils.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	operatorID, err := utils.ParseSessionToken(m.cfg.SessionSecret, cookie.Value)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("SessionAuth: недействительный токен", zap.Error(err))
		return nil, false
	}

	op, err := m.auth.GetOperator(r.Context(), operatorID)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("SessionAuth: оператор из сессии не найден",
			zap.Int("operator_id", operatorID), zap.Error(err))
		return nil, false
	}
	return op, true
}

// RequirePage защищает страницы админки: без сессии — редирект на форму входа.
func (m *SessionAuth) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		op, ok := m.resolve(r)
		if !ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(withOperator(r, op)))
	})
}

// RequireAPI защищает data-маршруты админки. Всегда отвечает явным 401:
// молчаливый пропуск без ответа — подвисший запрос у клиента.
func (m *SessionAuth) RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		op, ok := m.resolve(r)
		if !ok {
			helpers.Error(w, http.StatusUnauthorized, "Требуется авторизация")
			return
		}
		next.ServeHTTP(w, r.WithContext(withOperator(r, op)))
	})
}

func withOperator(r *http.Request, op *models.Operator) context.Context {
	ctx := reqctx.WithOperatorID(r.Context(), op.ID)
	return reqctx.WithOperatorName(ctx, op.Name)
}
