package controller

import (
	"net/http"
	"time"

	apperrors "biogate.io/application/appErrors"
	"biogate.io/application/controller/dto"
	"biogate.io/application/interfaces"
	security_usecases "biogate.io/application/usecases/security"
	server_response "biogate.io/infrastructure/serverResponse"
)

var SecurityService = security_usecases.SecurityService

func SecurityStatus(ctx *interfaces.ApplicationContext[any]) {
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "security status fetched", map[string]any{
		"status":         "operational",
		"security_level": "MILITARY_GRADE",
		"features": map[string]string{
			"password_hashing":  "argon2id",
			"template_kdf":      "pbkdf2-sha256",
			"session_tokens":    "jwt-hs256",
			"rate_limiting":     "active",
			"audit_logging":     "active",
			"template_matching": "constant-time",
		},
		"timestamp": time.Now().UTC(),
	}, nil, nil)
}

func AuditLogs(ctx *interfaces.ApplicationContext[dto.AuditQueryDTO]) {
	hours := security_usecases.ParseTimeRange(ctx.Body.TimeRange)
	logs, err := SecurityService().RecentAuditLogs(ctx.Context(), hours)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "audit logs fetched", map[string]any{
		"logs":       logs,
		"count":      len(logs),
		"time_range": hours,
	}, nil, nil)
}

func AuditStatistics(ctx *interfaces.ApplicationContext[dto.AuditQueryDTO]) {
	hours := security_usecases.ParseTimeRange(ctx.Body.TimeRange)
	statistics, err := SecurityService().Statistics(ctx.Context(), hours)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "audit statistics fetched", map[string]any{
		"statistics": statistics,
		"time_range": hours,
	}, nil, nil)
}
