package startup

import (
	"biogate.io/infrastructure/audit"
	"biogate.io/infrastructure/database"
	"biogate.io/infrastructure/env"
	"biogate.io/infrastructure/ipresolver"
	"biogate.io/infrastructure/logger"
	messagequeue "biogate.io/infrastructure/message_queue"
)

// Used to start services such as loggers, databases, queues, etc.
func StartServices() {
	logger.InitializeLogger()
	database.SetUpDatabase()
	ipresolver.Connect()

	mode := env.String("AUDIT_DELIVERY", audit.DeliveryDirect)
	if mode == audit.DeliveryQueue {
		if err := messagequeue.StartQueue(); err != nil {
			logger.Warning("task queue unavailable, audit events will be written directly")
			mode = audit.DeliveryDirect
		}
	}
	audit.Configure(mode, messagequeue.TaskQueue)
}

// Used to clean up after services that have been shutdown.
func CleanUpServices() {
	if env.String("AUDIT_DELIVERY", audit.DeliveryDirect) == audit.DeliveryQueue {
		messagequeue.StopQueue()
	}
	database.CleanUpDatabase()
	ipresolver.Close()
	logger.Sync()
}
