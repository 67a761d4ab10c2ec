package auth_usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "biogate.io/application/appErrors"
	"biogate.io/application/constants"
	"biogate.io/application/controller/dto"
	"biogate.io/application/utils"
	"biogate.io/entities"
	"biogate.io/infrastructure/auth"
	"biogate.io/infrastructure/cryptography"
	"biogate.io/infrastructure/logger"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

func LoginUserUseCase(ctx any, reqCtx context.Context, payload *dto.LoginDTO, meta RequestMeta) (*LoginResult, error) {
	users := userStore()
	identifier := strings.TrimSpace(payload.Username)

	user, err := users.FindOneByFilter(reqCtx, map[string]any{
		"$or": []map[string]any{
			{"username": identifier},
			{"email": strings.ToLower(identifier)},
		},
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	if user == nil || !user.IsActive || !cryptography.CryptoHasher.VerifyHashData(user.Password, payload.Password) {
		auditSink().Record(reqCtx, entities.SecurityAuditLog{
			EventType:        constants.EventSecurityViolation,
			UserID:           identifier,
			IPAddress:        meta.IPAddress,
			UserAgent:        meta.UserAgent,
			SecurityLevel:    constants.AuditWarning,
			ThreatIndicators: []string{constants.ThreatInvalidCredentials},
			ResponseAction:   constants.ActionBlocked,
		})
		apperrors.AuthenticationError(ctx, "Invalid credentials", nil)
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	ttl := auth.TokenTTL()
	claims := auth.ClaimsData{
		TokenID:   utils.GenerateUULDString(),
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}
	token, err := auth.GenerateAuthToken(claims)
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	if !auth.CreateSession(reqCtx, claims.TokenID, user.ID, ttl) {
		err = errors.New("could not create session")
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}

	if _, err := users.UpdatePartialByFilter(reqCtx, map[string]any{"_id": user.ID}, map[string]any{
		"last_login": now,
	}); err != nil {
		logger.Warning("could not update last login", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
	user.LastLogin = &now

	auditSink().Record(reqCtx, entities.SecurityAuditLog{
		EventType:      constants.EventAuthentication,
		UserID:         user.ID,
		IPAddress:      meta.IPAddress,
		UserAgent:      meta.UserAgent,
		SecurityLevel:  constants.AuditInfo,
		ResponseAction: constants.ActionAllowed,
	})

	return &LoginResult{
		Token:     *token,
		ExpiresAt: claims.ExpiresAt,
		User:      user,
	}, nil
}
