package routev1

import (
	"errors"
	"io"
	"net/http"
	"time"

	apperrors "biogate.io/application/appErrors"
	"biogate.io/application/constants"
	"biogate.io/application/controller"
	"biogate.io/application/controller/dto"
	"biogate.io/infrastructure/biometric"
	"biogate.io/infrastructure/env"
	middlewares "biogate.io/infrastructure/middleware"
	"biogate.io/infrastructure/ratelimit"
	"github.com/gin-gonic/gin"
)

const biometricImageField = "biometric_image"

// maxBiometricRequestBytes leaves room for the other form fields next to the image.
const maxBiometricRequestBytes = biometric.MaxImageBytes + 64<<10

// limitBiometricBody stops reading the request once it is larger than any
// valid upload, before multipart parsing spills it to disk.
func limitBiometricBody() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.ContentLength > maxBiometricRequestBytes {
			apperrors.ClientError(ctx, "The uploaded biometric image could not be used", []error{errors.New("request body too large")}, &constants.INVALID_BIOMETRIC_IMAGE)
			return
		}
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBiometricRequestBytes)
		ctx.Next()
	}
}

// readBiometricImage loads the uploaded part. At most one byte past the
// limit is read so oversized uploads are still rejected by the normalizer.
func readBiometricImage(ctx *gin.Context) (*biometric.RawImage, error) {
	header, err := ctx.FormFile(biometricImageField)
	if err != nil {
		return nil, errors.New("biometric_image is required")
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, biometric.MaxImageBytes+1))
	if err != nil {
		return nil, err
	}
	return &biometric.RawImage{
		Data:      data,
		MediaType: header.Header.Get("Content-Type"),
	}, nil
}

func BiometricRouter(router *gin.RouterGroup) {
	attemptsLimiter := ratelimit.BiometricAttemptsPerIP(env.Int("BIOMETRIC_RATE_LIMIT", 10), 15*time.Minute)

	biometricRouter := router.Group("/biometric")
	{
		biometricRouter.POST("/enroll", middlewares.UserAuthenticationMiddleware(), attemptsLimiter, limitBiometricBody(), func(ctx *gin.Context) {
			var body dto.EnrollBiometricDTO
			if err := ctx.ShouldBind(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			image, err := readBiometricImage(ctx)
			if err != nil {
				apperrors.ClientError(ctx, "A biometric image upload is required", []error{err}, &constants.INVALID_BIOMETRIC_IMAGE)
				return
			}
			body.Image = *image
			controller.EnrollBiometric(requestContext(ctx, &body))
		})

		biometricRouter.POST("/authenticate", attemptsLimiter, limitBiometricBody(), func(ctx *gin.Context) {
			var body dto.AuthenticateBiometricDTO
			if err := ctx.ShouldBind(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			image, err := readBiometricImage(ctx)
			if err != nil {
				apperrors.ClientError(ctx, "A biometric image upload is required", []error{err}, &constants.INVALID_BIOMETRIC_IMAGE)
				return
			}
			body.Image = *image
			controller.AuthenticateBiometric(requestContext(ctx, &body))
		})

		biometricRouter.GET("/status/:user_id", middlewares.UserAuthenticationMiddleware(), attemptsLimiter, func(ctx *gin.Context) {
			var body dto.SubjectDTO
			if err := ctx.ShouldBindUri(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.BiometricStatus(requestContext(ctx, &body))
		})

		biometricRouter.DELETE("/:user_id", middlewares.UserAuthenticationMiddleware(), attemptsLimiter, func(ctx *gin.Context) {
			var body dto.SubjectDTO
			if err := ctx.ShouldBindUri(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.RevokeBiometric(requestContext(ctx, &body))
		})

		biometricRouter.GET("/health", func(ctx *gin.Context) {
			controller.BiometricHealth(requestContext[any](ctx, nil))
		})
	}
}
