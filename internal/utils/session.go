package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName — имя HttpOnly-куки с токеном сессии админки.
const SessionCookieName = "khatreez_session"

// GenerateSessionToken создаёт токен сессии, привязанный только к id оператора.
// Полную строку из БД в токен не кладём — её каждый запрос перечитывает middleware.
func GenerateSessionToken(secret string, operatorID int, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"operator_id": operatorID,
		"exp":         time.Now().Add(ttl).Unix(),
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken проверяет подпись и срок действия, возвращает id оператора.
func ParseSessionToken(secret, tokenString string) (int, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("недействительный токен сессии")
	}

	operatorID, ok := claims["operator_id"].(float64)
	if !ok {
		return 0, errors.New("недопустимый payload токена")
	}
	return int(operatorID), nil
}
