// Package auth извлекает данные о текущем пользователе из сохранённого на клиенте токена.
//
// Подпись токена здесь не проверяется: клиент не знает секрета сервера,
// а claims нужны только для адресации запросов. Аутентификацию выполняет сервер.
package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken возвращается, когда токен не удаётся декодировать.
var ErrMalformedToken = errors.New("malformed token")

// ErrNoUserID возвращается, если в claims нет userId.
var ErrNoUserID = errors.New("token has no userId claim")

// UserID — идентификатор пользователя из claim userId.
// Сервер может выдавать его строкой или числом, поэтому принимаем оба варианта.
type UserID string

// UnmarshalJSON принимает строку или число.
func (u *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*u = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*u = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("userId: unsupported value %s", string(b))
	}
	*u = UserID(n.String())
	return nil
}

// Claims — полезная нагрузка токена, интересная клиенту.
// Остальные claims не разбираются: их формат клиенту безразличен.
type Claims struct {
	UserID UserID `json:"userId"`
}

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeToken декодирует payload (второй сегмент) токена без проверки подписи.
// Заголовок и подпись не читаются.
func DecodeToken(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrMalformedToken)
	}
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: expected at least 2 segments, got %d", ErrMalformedToken, len(parts))
	}
	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", ErrMalformedToken, err)
	}
	claims := &Claims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, ErrNoUserID)
	}
	return claims, nil
}
