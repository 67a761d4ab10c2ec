package mq_types

import "time"

type Queues string

const (
	EmailDeliveryTaskName Queues = "send_email"
	SecurityAuditTaskName Queues = "persist_security_audit"
)

type TaskQueueBroker interface {
	Start() error
	Enqueue(task QueueTask) error
	Shutdown()
}

type QueueTask struct {
	Name      Queues
	Payload   []byte
	Priority  TaskPriority
	ProcessIn time.Duration
	TimeOut   time.Duration
	MaxRetry  int
}

type TaskPriority string

const (
	Low    TaskPriority = "low"
	Medium TaskPriority = "medium"
	High   TaskPriority = "high"
)

type EmailPayload struct {
	To       string
	Subject  string
	Template string
	Opts     map[string]any
}
