package middlewares

import (
	"biogate.io/application/interfaces"
	"biogate.io/application/middlewares"
	"github.com/gin-gonic/gin"
)

// UserAuthenticationMiddleware must run after UserAgentMiddleware so the
// request metadata is already on the AppContext.
func UserAuthenticationMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		appContext := &interfaces.ApplicationContext[any]{
			Ctx:    ctx,
			Keys:   ctx.Keys,
			Header: ctx.Request.Header,
		}
		if existing, ok := ctx.Get("AppContext"); ok {
			appContext = existing.(*interfaces.ApplicationContext[any])
		}
		appContext, next := middlewares.UserAuthenticationMiddleware(appContext, ctx.GetHeader("Authorization"))
		if next {
			ctx.Set("AppContext", appContext)
			ctx.Next()
		}
	}
}
