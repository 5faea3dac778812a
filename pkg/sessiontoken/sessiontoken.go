package sessiontoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos de la sesión local.
// La firma HMAC hace el blob evidente ante manipulación: cualquier edición
// manual del archivo de sesión lo invalida.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
}

// Sign genera el blob firmado de la sesión. expiresAt en cero = sin vencimiento.
func Sign(secret string, c Claims, createdAt, expiresAt time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("sessiontoken: secret vacío")
	}
	c.IssuedAt = jwt.NewNumericDate(createdAt)
	if !expiresAt.IsZero() {
		c.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y vencimiento y devuelve los claims.
// Retorna error si el blob es ilegible, expirado o con firma incorrecta.
func Parse(secret, blob string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("sessiontoken: secret vacío")
	}
	token, err := jwt.ParseWithClaims(blob, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
