package utils

import (
	"testing"
	"time"
)

func TestSessionTokenRoundtrip(t *testing.T) {
	token, err := GenerateSessionToken("secret", 7, time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	id, err := ParseSessionToken("secret", token)
	if err != nil {
		t.Fatalf("ошибка разбора токена: %v", err)
	}
	if id != 7 {
		t.Fatalf("operator_id = %d, ожидалось 7", id)
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, _ := GenerateSessionToken("secret", 7, time.Hour)

	if _, err := ParseSessionToken("other", token); err == nil {
		t.Fatal("токен с чужой подписью должен отклоняться")
	}
}

func TestSessionTokenExpired(t *testing.T) {
	token, _ := GenerateSessionToken("secret", 7, -time.Minute)

	if _, err := ParseSessionToken("secret", token); err == nil {
		t.Fatal("просроченный токен должен отклоняться")
	}
}
