package routev1

import (
	apperrors "biogate.io/application/appErrors"
	"biogate.io/application/controller"
	"biogate.io/application/controller/dto"
	middlewares "biogate.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func SecurityRouter(router *gin.RouterGroup) {
	securityRouter := router.Group("/security")
	securityRouter.Use(middlewares.UserAuthenticationMiddleware())
	{
		securityRouter.GET("/status", func(ctx *gin.Context) {
			controller.SecurityStatus(requestContext[any](ctx, nil))
		})

		securityRouter.GET("/audit-logs", func(ctx *gin.Context) {
			var query dto.AuditQueryDTO
			if err := ctx.ShouldBindQuery(&query); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.AuditLogs(requestContext(ctx, &query))
		})

		securityRouter.GET("/statistics", func(ctx *gin.Context) {
			var query dto.AuditQueryDTO
			if err := ctx.ShouldBindQuery(&query); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.AuditStatistics(requestContext(ctx, &query))
		})
	}
}
