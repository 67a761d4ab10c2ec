package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"biogate.io/entities"
	"biogate.io/infrastructure/logger"
	mq_types "biogate.io/infrastructure/message_queue/types"
	"biogate.io/infrastructure/messaging/emails"
)

const alertTemplate = "security_alert"

// EmailAlerter mails Recipient about high risk events, through the task
// queue when Broker is set.
type EmailAlerter struct {
	Recipient string
	Mailer    emails.EmailServiceType
	Broker    mq_types.TaskQueueBroker
}

func (a *EmailAlerter) Alert(ctx context.Context, event *entities.SecurityAuditLog) {
	if a.Recipient == "" {
		return
	}
	subject := fmt.Sprintf("[biogate] %s event with severity %d", event.EventType, event.SeverityScore)
	opts := map[string]any{
		"SeverityScore":    event.SeverityScore,
		"EventType":        event.EventType,
		"SecurityLevel":    event.SecurityLevel,
		"UserID":           event.UserID,
		"IPAddress":        event.IPAddress,
		"ResponseAction":   event.ResponseAction,
		"CorrelationID":    event.CorrelationID,
		"Timestamp":        event.Timestamp.UTC().Format("2006-01-02 15:04:05 MST"),
		"ThreatIndicators": event.ThreatIndicators,
	}
	if a.Broker != nil {
		payload, _ := json.Marshal(mq_types.EmailPayload{
			To:       a.Recipient,
			Subject:  subject,
			Template: alertTemplate,
			Opts:     opts,
		})
		if err := a.Broker.Enqueue(mq_types.QueueTask{
			Name:     mq_types.EmailDeliveryTaskName,
			Payload:  payload,
			Priority: mq_types.Medium,
		}); err == nil {
			return
		}
	}
	if a.Mailer == nil {
		logger.Warning("no mailer configured for security alerts")
		return
	}
	go a.Mailer.SendEmail(a.Recipient, subject, alertTemplate, opts)
}
