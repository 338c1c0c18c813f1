package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"deskd/internal/application/user/usecases"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

type Claims struct {
	UserID    uint                   `json:"user_id"`
	Role      authorization.UserRole `json:"role"`
	TokenType TokenType              `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
	}
}

// Generate issues an access/refresh token pair for the user.
func (s *JWTService) Generate(userID uint, role authorization.UserRole) (*usecases.TokenPair, error) {
	now := biztime.NowUTC()

	accessExp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)
	accessToken, err := s.sign(userID, role, TokenTypeAccess, now, accessExp)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshExp := now.Add(time.Duration(s.refreshExpDays) * 24 * time.Hour)
	refreshToken, err := s.sign(userID, role, TokenTypeRefresh, now, refreshExp)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &usecases.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessExpMinutes * 60),
	}, nil
}

func (s *JWTService) sign(userID uint, role authorization.UserRole, tokenType TokenType, now, exp time.Time) (string, error) {
	claims := &Claims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks an access token and returns the authenticated identity.
func (s *JWTService) Validate(tokenString string) (uint, authorization.UserRole, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return 0, "", err
	}
	if claims.TokenType != TokenTypeAccess {
		return 0, "", fmt.Errorf("token is not an access token")
	}
	return claims.UserID, claims.Role, nil
}

// ValidateRefresh checks a refresh token and returns the claims needed to
// rotate it.
func (s *JWTService) ValidateRefresh(tokenString string) (*usecases.RefreshClaims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, fmt.Errorf("token is not a refresh token")
	}

	refreshClaims := &usecases.RefreshClaims{
		UserID: claims.UserID,
		Role:   claims.Role,
	}
	if claims.ExpiresAt != nil {
		refreshClaims.ExpiresAt = claims.ExpiresAt.Time
	}
	return refreshClaims, nil
}

// Verify parses the token and returns the full claims, including expiry.
// The HTTP middleware uses the expiry to bound blacklist entries on logout.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
