package audit

import (
	"context"

	"biogate.io/entities"
)

type Store interface {
	CreateOne(ctx context.Context, payload entities.SecurityAuditLog) (*entities.SecurityAuditLog, error)
}

type Alerter interface {
	Alert(ctx context.Context, event *entities.SecurityAuditLog)
}

// Sink accepts audit events. Record never fails the caller.
type Sink interface {
	Record(ctx context.Context, event entities.SecurityAuditLog)
}

const (
	DeliveryDirect = "direct"
	DeliveryQueue  = "queue"
)
