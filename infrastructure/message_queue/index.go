package messagequeue

import (
	"biogate.io/infrastructure/message_queue/asynq"
	mq_types "biogate.io/infrastructure/message_queue/types"
)

var TaskQueue mq_types.TaskQueueBroker = &asynq.AsynqBroker{}

func StartQueue() error {
	return TaskQueue.Start()
}

func StopQueue() {
	TaskQueue.Shutdown()
}
