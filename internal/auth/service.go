package auth

import (
	"fmt"
	"strconv"
	"time"

	apperrors "template-service-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer = "template-service-backend"
	tokenTTL    = time.Hour
)

// UserProfile identifies the user a token is issued for
type UserProfile struct {
	ID       int64  `json:"id" example:"12345"`
	Username string `json:"username" example:"johndoe"`
	Email    string `json:"email" example:"john.doe@example.com"`
}

// AuthService issues and verifies the bearer tokens that identify callers.
// Team membership and permissions are checked elsewhere.
type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               int64  `json:"user_id" example:"12345"`
	Username             string `json:"username" example:"johndoe"`
	Email                string `json:"email" example:"john.doe@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// NewAuthService creates a new authentication service
func NewAuthService(jwtSecret string) (*AuthService, error) {
	if jwtSecret == "" {
		return nil, apperrors.ErrJWTSecretMissing
	}
	return &AuthService{
		secret: []byte(jwtSecret),
		ttl:    tokenTTL,
		now:    time.Now,
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(userProfile *UserProfile) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   userProfile.ID,
		Username: userProfile.Username,
		Email:    userProfile.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(userProfile.ID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.UserID > 0 {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
