package asynq

import (
	"errors"
	"os"
	"time"

	"biogate.io/infrastructure/logger"
	queue_tasks "biogate.io/infrastructure/message_queue/tasks"
	mq_types "biogate.io/infrastructure/message_queue/types"
	"github.com/hibiken/asynq"
)

var ErrBrokerNotStarted = errors.New("task queue has not been started")

type AsynqBroker struct {
	Client *asynq.Client
	server *asynq.Server
}

func redisConnOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}

func (aq *AsynqBroker) Start() error {
	aq.Client = asynq.NewClient(redisConnOpt())

	aq.server = asynq.NewServer(
		redisConnOpt(),
		asynq.Config{
			Concurrency: 20,
			Queues: map[string]int{
				string(mq_types.High):   7,
				string(mq_types.Medium): 2,
				string(mq_types.Low):    1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(string(mq_types.EmailDeliveryTaskName), queue_tasks.HandleEmailDeliveryTask)
	mux.HandleFunc(string(mq_types.SecurityAuditTaskName), queue_tasks.HandleSecurityAuditTask)

	if err := aq.server.Start(mux); err != nil {
		logger.Error("could not start task queue worker", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}
	logger.Info("task queue worker started")
	return nil
}

func (aq *AsynqBroker) Enqueue(task mq_types.QueueTask) error {
	if aq.Client == nil {
		return ErrBrokerNotStarted
	}
	if task.TimeOut == 0 {
		task.TimeOut = 60 * time.Second
	}
	if task.MaxRetry == 0 {
		task.MaxRetry = 10
	}
	if task.Priority == "" {
		task.Priority = mq_types.Medium
	}
	_, err := aq.Client.Enqueue(asynq.NewTask(string(task.Name), task.Payload),
		asynq.ProcessIn(task.ProcessIn),
		asynq.MaxRetry(task.MaxRetry),
		asynq.Timeout(task.TimeOut),
		asynq.Queue(string(task.Priority)))
	if err != nil {
		logger.Error("could not enqueue task", logger.LoggerOptions{
			Key:  "task",
			Data: task.Name,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
	return err
}

func (aq *AsynqBroker) Shutdown() {
	if aq.server != nil {
		aq.server.Shutdown()
	}
	if aq.Client != nil {
		aq.Client.Close()
	}
}
