package auth_usecases

import (
	"context"

	"biogate.io/application/constants"
	"biogate.io/entities"
	"biogate.io/infrastructure/auth"
)

// LogoutUserUseCase drops the session so the token stops working before it expires.
func LogoutUserUseCase(reqCtx context.Context, tokenID string, userID string, meta RequestMeta) {
	auth.SignOutUser(reqCtx, tokenID, "logout")
	auditSink().Record(reqCtx, entities.SecurityAuditLog{
		EventType:      constants.EventAuthentication,
		UserID:         userID,
		IPAddress:      meta.IPAddress,
		UserAgent:      meta.UserAgent,
		SecurityLevel:  constants.AuditInfo,
		ResponseAction: constants.ActionLogout,
	})
}
