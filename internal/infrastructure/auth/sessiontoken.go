package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims identifies an authenticated browser session.
type SessionClaims struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
	jwt.RegisteredClaims
}

// SessionTokenService signs and verifies the session tokens carried in the
// HttpOnly session cookie.
type SessionTokenService struct {
	secret   []byte
	expHours int
}

func NewSessionTokenService(secret string, expHours int) *SessionTokenService {
	if expHours <= 0 {
		expHours = 24
	}
	return &SessionTokenService{
		secret:   []byte(secret),
		expHours: expHours,
	}
}

// Generate signs a session token for the given user.
func (s *SessionTokenService) Generate(userID uint, username string, isStaff, isSuperuser bool) (string, error) {
	now := time.Now().UTC()
	claims := &SessionClaims{
		UserID:      userID,
		Username:    username,
		IsStaff:     isStaff,
		IsSuperuser: isSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// MaxAge returns the cookie lifetime in seconds.
func (s *SessionTokenService) MaxAge() int {
	return s.expHours * 3600
}

// Verify parses and validates a session token.
func (s *SessionTokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}
