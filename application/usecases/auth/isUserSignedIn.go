package auth_usecases

import (
	"context"
	"strings"

	"biogate.io/application/constants"
	"biogate.io/infrastructure/auth"
	"biogate.io/infrastructure/logger"
)

// IsUserSignedIn accepts a raw token or a "Bearer <token>" header value.
// The token must decode and its session must still be live in the cache.
func IsUserSignedIn(ctx context.Context, authToken string) UserAuthResult {
	result := UserAuthResult{
		IsAuthenticated: false,
	}

	authToken = strings.TrimSpace(strings.TrimPrefix(authToken, "Bearer "))
	if authToken == "" {
		result.ErrorMessage = "missing auth token"
		result.Threat = constants.ThreatMissingToken
		return result
	}

	claims, err := auth.DecodeAuthToken(authToken)
	if err != nil {
		result.ErrorMessage = "unauthorised access"
		result.Threat = constants.ThreatInvalidToken
		return result
	}

	if err := auth.VerifySession(ctx, claims); err != nil {
		logger.Info("request made with a signed out session", logger.LoggerOptions{
			Key:  "userID",
			Data: claims.UserID,
		})
		result.ErrorMessage = "this session has expired"
		result.Threat = constants.ThreatInvalidToken
		return result
	}

	result.IsAuthenticated = true
	result.UserID = claims.UserID
	result.Username = claims.Username
	result.Email = claims.Email
	result.TokenID = claims.TokenID
	return result
}
