package routev1

import (
	"biogate.io/application/interfaces"
	"github.com/gin-gonic/gin"
)

// requestContext hands the request metadata gathered by the middlewares to
// a typed controller context.
func requestContext[T any](ctx *gin.Context, body *T) *interfaces.ApplicationContext[T] {
	appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
	return &interfaces.ApplicationContext[T]{
		Ctx:        ctx,
		Body:       body,
		Keys:       appContext.Keys,
		Header:     appContext.Header,
		DeviceID:   appContext.DeviceID,
		UserAgent:  appContext.UserAgent,
		DeviceName: appContext.DeviceName,
		ClientIP:   appContext.ClientIP,
	}
}
