package logger

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware writes one structured line per request once the handler chain returns.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		payload := []LoggerOptions{
			{Key: "method", Data: ctx.Request.Method},
			{Key: "path", Data: ctx.FullPath()},
			{Key: "status", Data: ctx.Writer.Status()},
			{Key: "durationMs", Data: time.Since(start).Milliseconds()},
			{Key: "clientIP", Data: ctx.ClientIP()},
		}
		if len(ctx.Errors) > 0 {
			payload = append(payload, LoggerOptions{Key: "errors", Data: ctx.Errors.String()})
		}

		switch status := ctx.Writer.Status(); {
		case status >= 500:
			Error("request completed", payload...)
		case status >= 400:
			Warning("request completed", payload...)
		default:
			Info("request completed", payload...)
		}
	}
}
