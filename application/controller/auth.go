package controller

import (
	"net/http"
	"time"

	apperrors "biogate.io/application/appErrors"
	"biogate.io/application/controller/dto"
	"biogate.io/application/interfaces"
	auth_usecases "biogate.io/application/usecases/auth"
	server_response "biogate.io/infrastructure/serverResponse"
	"biogate.io/infrastructure/validator"
)

func RegisterUser(ctx *interfaces.ApplicationContext[dto.RegisterDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	user, err := auth_usecases.RegisterUserUseCase(ctx.Ctx, ctx.Context(), ctx.Body, ctx.UserAgent)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "account created", user, nil, nil)
}

func LoginUser(ctx *interfaces.ApplicationContext[dto.LoginDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	result, err := auth_usecases.LoginUserUseCase(ctx.Ctx, ctx.Context(), ctx.Body, requestMeta(ctx))
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "login successful", result, nil, nil)
}

func LogoutUser(ctx *interfaces.ApplicationContext[any]) {
	auth_usecases.LogoutUserUseCase(ctx.Context(), ctx.GetStringContextData("TokenID"), ctx.GetStringContextData("UserID"), requestMeta(ctx))
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "signed out", nil, nil, nil)
}

func AuthHealth(ctx *interfaces.ApplicationContext[any]) {
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "authentication system is up", map[string]any{
		"status":    "operational",
		"system":    "authentication",
		"timestamp": time.Now().UTC(),
	}, nil, nil)
}

func requestMeta[T any](ctx *interfaces.ApplicationContext[T]) auth_usecases.RequestMeta {
	return auth_usecases.RequestMeta{
		IPAddress: ctx.ClientIP,
		UserAgent: ctx.UserAgent,
	}
}
