package middlewares

import (
	"biogate.io/application/interfaces"
	"biogate.io/infrastructure/useragent"
)

// UserAgentMiddleware records who is calling. A missing header is not an
// error here; the audit trail simply carries an empty user agent.
func UserAgentMiddleware(ctx *interfaces.ApplicationContext[any], clientIP string) (*interfaces.ApplicationContext[any], bool) {
	ctx.ClientIP = clientIP
	agent := ctx.GetHeader("User-Agent")
	if agent != nil {
		agentDetails := useragent.ParseUserAgent(*agent)
		ctx.UserAgent = *agent
		ctx.DeviceName = agentDetails.Name
	}
	if deviceID := ctx.GetHeader("X-Device-Id"); deviceID != nil {
		ctx.DeviceID = *deviceID
	}
	return ctx, true
}
