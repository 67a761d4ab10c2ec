package controller

import (
	"errors"
	"net/http"
	"time"

	apperrors "biogate.io/application/appErrors"
	"biogate.io/application/constants"
	"biogate.io/application/controller/dto"
	"biogate.io/application/interfaces"
	biometric_usecases "biogate.io/application/usecases/biometric"
	"biogate.io/infrastructure/biometric"
	server_response "biogate.io/infrastructure/serverResponse"
	"biogate.io/infrastructure/validator"
)

var BiometricService = biometric_usecases.BiometricService

func biometricActor[T any](ctx *interfaces.ApplicationContext[T]) biometric_usecases.Actor {
	return biometric_usecases.Actor{
		OperatorID: ctx.GetStringContextData("UserID"),
		IPAddress:  ctx.ClientIP,
		UserAgent:  ctx.UserAgent,
	}
}

// respondBiometricError maps use case failures onto HTTP responses.
func respondBiometricError(ctx any, err error) {
	switch {
	case errors.Is(err, biometric.ErrInvalidImage):
		apperrors.ClientError(ctx, "The uploaded biometric image could not be used", []error{err}, &constants.INVALID_BIOMETRIC_IMAGE)
	case errors.Is(err, biometric.ErrDegenerateImage):
		apperrors.UnprocessableEntityError(ctx, "The biometric image carries no usable features", &constants.DEGENERATE_BIOMETRIC_IMAGE)
	case errors.Is(err, biometric_usecases.ErrDuplicateEnrollment):
		apperrors.EntityAlreadyExistsError(ctx, "User already has an active biometric enrollment", &constants.DUPLICATE_ENROLLMENT)
	case errors.Is(err, biometric_usecases.ErrUnknownSubject):
		apperrors.NotFoundError(ctx, "User not enrolled", &constants.SUBJECT_NOT_ENROLLED)
	case errors.Is(err, biometric_usecases.ErrPipelineTimeout):
		apperrors.ServiceUnavailableError(ctx, "Biometric processing took too long. Please try again.", &constants.BIOMETRIC_TIMEOUT)
	default:
		apperrors.FatalServerError(ctx, err)
	}
}

func EnrollBiometric(ctx *interfaces.ApplicationContext[dto.EnrollBiometricDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	result, err := BiometricService().Enroll(ctx.Context(), biometric_usecases.EnrollInput{
		Image:         ctx.Body.Image,
		UserID:        ctx.Body.UserID,
		SecurityLevel: ctx.Body.SecurityLevel,
		Actor:         biometricActor(ctx),
	})
	if err != nil {
		respondBiometricError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "Biometric enrollment successful", map[string]any{
		"user_id":        ctx.Body.UserID,
		"template_hash":  result.TemplateHash,
		"feature_vector": result.FeatureVector,
		"security_level": result.Template.SecurityLevel,
		"timestamp":      result.Template.CreatedAt,
	}, nil, nil)
}

func AuthenticateBiometric(ctx *interfaces.ApplicationContext[dto.AuthenticateBiometricDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	result, err := BiometricService().Authenticate(ctx.Context(), biometric_usecases.AuthenticateInput{
		Image:  ctx.Body.Image,
		UserID: ctx.Body.UserID,
		Actor:  biometricActor(ctx),
	})
	if err != nil {
		respondBiometricError(ctx.Ctx, err)
		return
	}
	if !result.Matched {
		apperrors.AuthenticationError(ctx.Ctx, "Authentication failed", &constants.BIOMETRIC_MISMATCH)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "Authentication successful", map[string]any{
		"user_id":        ctx.Body.UserID,
		"authenticated":  true,
		"security_level": result.Template.SecurityLevel,
		"usage_count":    result.Template.UsageCount,
		"timestamp":      time.Now().UTC(),
	}, nil, nil)
}

func BiometricStatus(ctx *interfaces.ApplicationContext[dto.SubjectDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	status, err := BiometricService().Status(ctx.Context(), ctx.Body.UserID)
	if err != nil {
		respondBiometricError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "enrollment status fetched", status, nil, nil)
}

func RevokeBiometric(ctx *interfaces.ApplicationContext[dto.SubjectDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	if err := BiometricService().Revoke(ctx.Context(), ctx.Body.UserID, biometricActor(ctx)); err != nil {
		respondBiometricError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "biometric enrollment revoked", map[string]any{
		"user_id":  ctx.Body.UserID,
		"enrolled": false,
	}, nil, nil)
}

func BiometricHealth(ctx *interfaces.ApplicationContext[any]) {
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "biometric system is up", map[string]any{
		"status": "operational",
		"system": "biometric_authentication",
		"features": map[string]string{
			"feature_extraction":  "active",
			"template_generation": "active",
			"security_logging":    "active",
		},
		"timestamp": time.Now().UTC(),
	}, nil, nil)
}
