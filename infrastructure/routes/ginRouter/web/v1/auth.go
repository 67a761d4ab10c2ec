package routev1

import (
	apperrors "biogate.io/application/appErrors"
	"biogate.io/application/controller"
	"biogate.io/application/controller/dto"
	middlewares "biogate.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func AuthRouter(router *gin.RouterGroup) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/register", func(ctx *gin.Context) {
			var body dto.RegisterDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.RegisterUser(requestContext(ctx, &body))
		})

		authRouter.POST("/login", func(ctx *gin.Context) {
			var body dto.LoginDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.LoginUser(requestContext(ctx, &body))
		})

		authRouter.POST("/logout", middlewares.UserAuthenticationMiddleware(), func(ctx *gin.Context) {
			controller.LogoutUser(requestContext[any](ctx, nil))
		})

		authRouter.GET("/health", func(ctx *gin.Context) {
			controller.AuthHealth(requestContext[any](ctx, nil))
		})
	}
}
