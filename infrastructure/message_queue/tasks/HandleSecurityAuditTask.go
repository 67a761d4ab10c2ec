package queue_tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"biogate.io/entities"
	"biogate.io/infrastructure/audit"
	"biogate.io/infrastructure/logger"
	"github.com/hibiken/asynq"
)

type auditEventWriter interface {
	Write(ctx context.Context, event entities.SecurityAuditLog) error
}

var auditWriter = func() auditEventWriter {
	return audit.Writer()
}

func HandleSecurityAuditTask(ctx context.Context, t *asynq.Task) error {
	var event entities.SecurityAuditLog
	if err := json.Unmarshal(t.Payload(), &event); err != nil {
		logger.Error("an error occured while unmarshalling security audit payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return fmt.Errorf("%w: %s", asynq.SkipRetry, err.Error())
	}
	return auditWriter().Write(ctx, event)
}
