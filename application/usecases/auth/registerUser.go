package auth_usecases

import (
	"context"
	"errors"
	"strings"

	apperrors "biogate.io/application/appErrors"
	"biogate.io/application/constants"
	"biogate.io/application/controller/dto"
	"biogate.io/entities"
	"biogate.io/infrastructure/cryptography"
	"biogate.io/infrastructure/database/repository/mongo"
	"biogate.io/infrastructure/logger"
)

var ErrUserExists = errors.New("user with username or email already exists")

func RegisterUserUseCase(ctx any, reqCtx context.Context, payload *dto.RegisterDTO, userAgent string) (*entities.User, error) {
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	users := userStore()

	exists, err := users.CountDocs(reqCtx, map[string]any{
		"$or": []map[string]any{
			{"email": payload.Email},
			{"username": payload.Username},
		},
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	if exists != 0 {
		apperrors.EntityAlreadyExistsError(ctx, "User with username or email already exists", nil)
		return nil, ErrUserExists
	}

	hashedPassword, err := cryptography.CryptoHasher.HashString(payload.Password)
	if err != nil {
		logger.Error("an error occured while hashing user password", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}

	user, err := users.CreateOne(reqCtx, entities.User{
		Username:      payload.Username,
		Email:         payload.Email,
		Password:      string(hashedPassword),
		SecurityLevel: constants.SecurityLevelStandard,
		IsActive:      true,
		UserAgent:     userAgent,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrDuplicateKey) {
			apperrors.EntityAlreadyExistsError(ctx, "User with username or email already exists", nil)
			return nil, ErrUserExists
		}
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	return user, nil
}
