package interfaces

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApplicationContext carries the request and whatever the middlewares
// learned about it into controllers.
type ApplicationContext[T any] struct {
	Ctx        *gin.Context
	Body       *T
	Keys       map[string]any
	Header     http.Header
	DeviceID   string
	UserAgent  string
	DeviceName string
	ClientIP   string
}

func (ctx *ApplicationContext[T]) GetHeader(key string) *string {
	if ctx.Header == nil {
		return nil
	}
	value := ctx.Header.Get(key)
	if value == "" {
		return nil
	}
	return &value
}

func (ctx *ApplicationContext[T]) SetContextData(key string, value any) {
	if ctx.Keys == nil {
		ctx.Keys = map[string]any{}
	}
	ctx.Keys[key] = value
	if ctx.Ctx != nil {
		ctx.Ctx.Set(key, value)
	}
}

func (ctx *ApplicationContext[T]) GetContextData(key string) any {
	if ctx.Keys == nil {
		return nil
	}
	return ctx.Keys[key]
}

func (ctx *ApplicationContext[T]) GetStringContextData(key string) string {
	value, _ := ctx.GetContextData(key).(string)
	return value
}

// Context is the request context, or Background outside a request.
func (ctx *ApplicationContext[T]) Context() context.Context {
	if ctx.Ctx == nil || ctx.Ctx.Request == nil {
		return context.Background()
	}
	return ctx.Ctx.Request.Context()
}
