package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	sessionSecret          = []byte("change-me-in-production")
	sessionExpirationHours = 168
)

type SessionClaims struct {
	ProfileID uint `json:"profileID"`
	jwt.RegisteredClaims
}

func FormatID(profileID uint) string {
	return strconv.FormatUint(uint64(profileID), 10)
}

func ConfigureSessions(secret string, expirationHours int) {
	if secret != "" {
		sessionSecret = []byte(secret)
	}
	if expirationHours > 0 {
		sessionExpirationHours = expirationHours
	}
}

func SessionDuration() time.Duration {
	return time.Duration(sessionExpirationHours) * time.Hour
}

func GenerateSessionToken(profileID uint) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		ProfileID: profileID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration())),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatUint(uint64(profileID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret)
}

func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return sessionSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return claims, nil
}
