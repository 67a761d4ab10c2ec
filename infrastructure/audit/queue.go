package audit

import (
	"context"
	"encoding/json"

	"biogate.io/entities"
	"biogate.io/infrastructure/ipresolver/types"
	"biogate.io/infrastructure/logger"
	mq_types "biogate.io/infrastructure/message_queue/types"
)

// QueueSink hands events to the task queue. When enqueueing fails the
// event goes to Fallback instead.
type QueueSink struct {
	Broker   mq_types.TaskQueueBroker
	Resolver types.IPResolver
	Fallback Sink
}

func (s *QueueSink) Record(ctx context.Context, event entities.SecurityAuditLog) {
	Enrich(&event, s.Resolver)
	// stamp the id now so retried deliveries collapse onto one document
	stamped := event.ParseModel().(*entities.SecurityAuditLog)

	payload, err := json.Marshal(stamped)
	if err == nil {
		err = s.Broker.Enqueue(mq_types.QueueTask{
			Name:     mq_types.SecurityAuditTaskName,
			Payload:  payload,
			Priority: mq_types.High,
		})
	}
	if err == nil {
		return
	}
	logger.Warning("could not queue security audit event", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	if s.Fallback != nil {
		s.Fallback.Record(ctx, *stamped)
	}
}
