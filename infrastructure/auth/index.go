package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"biogate.io/infrastructure/database/repository/cache"
	"biogate.io/infrastructure/env"
	"biogate.io/infrastructure/logger"
	"github.com/golang-jwt/jwt"
)

const defaultTokenTTL = 24 * time.Hour

var (
	ErrInvalidToken   = errors.New("invalid token used")
	ErrSessionExpired = errors.New("session has expired or was signed out")
)

// TokenTTL reads JWT_TTL, falling back to a day.
func TokenTTL() time.Duration {
	return env.Duration("JWT_TTL", defaultTokenTTL)
}

func GenerateAuthToken(claimsData ClaimsData) (*string, error) {
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":      os.Getenv("JWT_ISSUER"),
		"jti":      claimsData.TokenID,
		"userID":   claimsData.UserID,
		"username": claimsData.Username,
		"email":    claimsData.Email,
		"exp":      claimsData.ExpiresAt,
		"iat":      claimsData.IssuedAt,
	}).SignedString([]byte(os.Getenv("JWT_SIGNING_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func DecodeAuthToken(tokenString string) (*ClaimsData, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SIGNING_KEY")), nil
	})
	if err != nil {
		logger.Warning("error decoding jwt", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err.Error())
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" && !claims.VerifyIssuer(issuer, true) {
		return nil, ErrInvalidToken
	}
	data := ClaimsData{}
	data.TokenID, _ = claims["jti"].(string)
	data.UserID, _ = claims["userID"].(string)
	data.Username, _ = claims["username"].(string)
	data.Email, _ = claims["email"].(string)
	if exp, ok := claims["exp"].(float64); ok {
		data.ExpiresAt = int64(exp)
	}
	if iat, ok := claims["iat"].(float64); ok {
		data.IssuedAt = int64(iat)
	}
	if data.TokenID == "" || data.UserID == "" {
		return nil, ErrInvalidToken
	}
	return &data, nil
}

func sessionKey(tokenID string) string {
	return fmt.Sprintf("session:%s", tokenID)
}

// CreateSession records the token as live until it expires or the user signs out.
func CreateSession(ctx context.Context, tokenID string, userID string, ttl time.Duration) bool {
	return cache.Cache.CreateEntry(ctx, sessionKey(tokenID), userID, ttl)
}

func VerifySession(ctx context.Context, claims *ClaimsData) error {
	owner := cache.Cache.FindOne(ctx, sessionKey(claims.TokenID))
	if owner == nil || *owner != claims.UserID {
		return ErrSessionExpired
	}
	return nil
}

func SignOutUser(ctx context.Context, tokenID string, reason string) bool {
	logger.Info("user signout initiated", logger.LoggerOptions{
		Key:  "reason",
		Data: reason,
	})
	deleted := cache.Cache.DeleteOne(ctx, sessionKey(tokenID))
	if !deleted {
		logger.Warning("no session found to sign out", logger.LoggerOptions{
			Key:  "tokenID",
			Data: tokenID,
		})
	}
	return deleted
}
