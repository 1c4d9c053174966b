package auth

import (
	"errors"
	"fmt"
	"time"

	"flexygig/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("auth: invalid token")

// Claims - полезная нагрузка access-токена.
// Идентичность передается в каждый хендлер явно, через context запроса.
type Claims struct {
	UserID     uint `json:"user_id"`
	IsBusiness bool `json:"is_business"`
	jwt.RegisteredClaims
}

// GenerateToken выпускает подписанный access-токен для пользователя
func GenerateToken(userID uint, isBusiness bool) (string, error) {
	cfg := config.GetConfig()

	ttl := time.Duration(cfg.JWT.TTL) * time.Minute
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := Claims{
		UserID:     userID,
		IsBusiness: isBusiness,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken проверяет подпись и срок действия токена
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth: parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
