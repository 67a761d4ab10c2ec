package middlewares

import (
	apperrors "biogate.io/application/appErrors"
	"biogate.io/application/constants"
	"biogate.io/application/interfaces"
	authusecase "biogate.io/application/usecases/auth"
	"biogate.io/entities"
	"biogate.io/infrastructure/audit"
)

var auditSink = func() audit.Sink {
	return audit.Default()
}

func UserAuthenticationMiddleware(ctx *interfaces.ApplicationContext[any], authToken string) (*interfaces.ApplicationContext[any], bool) {
	authResult := authusecase.IsUserSignedIn(ctx.Context(), authToken)

	if !authResult.IsAuthenticated {
		auditSink().Record(ctx.Context(), entities.SecurityAuditLog{
			EventType:        constants.EventSecurityViolation,
			IPAddress:        ctx.ClientIP,
			UserAgent:        ctx.UserAgent,
			SecurityLevel:    constants.AuditWarning,
			ThreatIndicators: []string{authResult.Threat},
			ResponseAction:   constants.ActionDenied,
		})
		var responseCode *uint
		if authResult.Threat == constants.ThreatInvalidToken {
			responseCode = &constants.SESSION_EXPIRED
		}
		apperrors.AuthenticationError(ctx.Ctx, authResult.ErrorMessage, responseCode)
		return nil, false
	}

	ctx.SetContextData("UserID", authResult.UserID)
	ctx.SetContextData("Username", authResult.Username)
	ctx.SetContextData("Email", authResult.Email)
	ctx.SetContextData("TokenID", authResult.TokenID)

	return ctx, true
}
