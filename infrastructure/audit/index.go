package audit

import (
	"os"
	"sync"

	"biogate.io/application/repository"
	"biogate.io/infrastructure/env"
	"biogate.io/infrastructure/ipresolver"
	"biogate.io/infrastructure/logger"
	mq_types "biogate.io/infrastructure/message_queue/types"
	"biogate.io/infrastructure/messaging/emails"
)

var (
	writerOnce = sync.Once{}
	writer     *DirectSink

	sinkMu sync.RWMutex
	sink   Sink
)

// Writer is the sink that actually persists events. Direct delivery and
// the queue worker both end here.
func Writer() *DirectSink {
	writerOnce.Do(func() {
		writer = &DirectSink{
			Store:    repository.SecurityAuditLogRepo(),
			Resolver: ipresolver.IPResolverInstance,
			Timeout:  env.Duration("AUDIT_WRITE_TIMEOUT", DefaultWriteTimeout),
			Alerter: &EmailAlerter{
				Recipient: os.Getenv("SECURITY_ALERT_EMAIL"),
				Mailer:    emails.EmailService,
			},
		}
	})
	return writer
}

// Configure picks the delivery mode, reading AUDIT_DELIVERY when mode is empty.
func Configure(mode string, queue mq_types.TaskQueueBroker) Sink {
	if mode == "" {
		mode = env.String("AUDIT_DELIVERY", DeliveryDirect)
	}
	var selected Sink = Writer()
	if mode == DeliveryQueue && queue != nil {
		Writer().Alerter.(*EmailAlerter).Broker = queue
		selected = &QueueSink{Broker: queue, Resolver: ipresolver.IPResolverInstance, Fallback: Writer()}
	} else if mode != "" && mode != DeliveryDirect {
		logger.Warning("unknown audit delivery mode, using direct", logger.LoggerOptions{
			Key:  "mode",
			Data: mode,
		})
	}
	Use(selected)
	return selected
}

// Default returns the configured sink, direct delivery unless Configure said otherwise.
func Default() Sink {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	if sink == nil {
		return Writer()
	}
	return sink
}

// Use replaces the configured sink.
func Use(selected Sink) {
	sinkMu.Lock()
	sink = selected
	sinkMu.Unlock()
}
