package audit

import (
	"context"
	"errors"
	"time"

	"biogate.io/entities"
	"biogate.io/infrastructure/database/repository/mongo"
	"biogate.io/infrastructure/ipresolver/types"
	"biogate.io/infrastructure/logger"
)

// DefaultWriteTimeout bounds how long a request waits on the audit store.
const DefaultWriteTimeout = 500 * time.Millisecond

// DirectSink persists events in the caller's goroutine with its own deadline.
type DirectSink struct {
	Store    Store
	Alerter  Alerter
	Resolver types.IPResolver
	Timeout  time.Duration
}

func (s *DirectSink) Record(ctx context.Context, event entities.SecurityAuditLog) {
	if err := s.Write(ctx, event); err != nil {
		logger.Error("failed to persist security audit event", logger.LoggerOptions{
			Key:  "eventType",
			Data: event.EventType,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}

// Write stores the event and raises an alert for high risk events.
// A duplicate id means an earlier delivery already stored it.
func (s *DirectSink) Write(ctx context.Context, event entities.SecurityAuditLog) error {
	Enrich(&event, s.Resolver)
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	saved, err := s.Store.CreateOne(writeCtx, event)
	if err != nil {
		if errors.Is(err, mongo.ErrDuplicateKey) {
			return nil
		}
		return err
	}
	logEvent(saved)
	if saved.IsHighRisk() && s.Alerter != nil {
		s.Alerter.Alert(context.WithoutCancel(ctx), saved)
	}
	return nil
}

func logEvent(event *entities.SecurityAuditLog) {
	opts := []logger.LoggerOptions{
		{Key: "eventId", Data: event.ID},
		{Key: "eventType", Data: event.EventType},
		{Key: "severity", Data: event.SeverityScore},
		{Key: "action", Data: event.ResponseAction},
	}
	if event.IsHighRisk() {
		logger.Warning("high risk security event", opts...)
		return
	}
	logger.Info("security event recorded", opts...)
}
