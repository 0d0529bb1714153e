package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"timeweave/core/config"
	"timeweave/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task types processed by the background worker.
const (
	TaskTypeInvitationEmail     = "email:meeting_invitation"
	TaskTypeLockedEmail         = "email:meeting_locked"
	TaskTypeAvailabilityRefresh = "availability:refresh"
)

// Cron expression for the nightly availability sweep, server local time.
const AvailabilityRefreshSchedule = "0 3 * * *"

type (
	InvitationEmailPayload struct {
		MeetingID     uuid.UUID `json:"meeting_id"`
		ParticipantID uuid.UUID `json:"participant_id"`
	}

	LockedEmailPayload struct {
		MeetingID uuid.UUID `json:"meeting_id"`
	}
)

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Queue wraps the asynq client used by services to enqueue background work.
type Queue struct {
	client *asynq.Client
}

func NewQueue(cfg config.RedisConfig) *Queue {
	return &Queue{client: asynq.NewClient(redisOpt(cfg))}
}

func (q *Queue) Close() error {
	return q.client.Close()
}

func (q *Queue) EnqueueInvitationEmail(ctx context.Context, p InvitationEmailPayload) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal invitation payload: %w", err)
	}

	task := asynq.NewTask(TaskTypeInvitationEmail, payload)
	info, err := q.client.EnqueueContext(ctx, task, asynq.MaxRetry(5), asynq.Queue("emails"))
	if err != nil {
		return fmt.Errorf("enqueue invitation email: %w", err)
	}

	logger.Debug("Queue:EnqueueInvitationEmail", "task_id", info.ID, "meeting_id", p.MeetingID)
	return nil
}

func (q *Queue) EnqueueLockedEmail(ctx context.Context, p LockedEmailPayload) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal locked payload: %w", err)
	}

	task := asynq.NewTask(TaskTypeLockedEmail, payload)
	info, err := q.client.EnqueueContext(ctx, task, asynq.MaxRetry(5), asynq.Queue("emails"))
	if err != nil {
		return fmt.Errorf("enqueue locked email: %w", err)
	}

	logger.Debug("Queue:EnqueueLockedEmail", "task_id", info.ID, "meeting_id", p.MeetingID)
	return nil
}

// NewServer builds the worker that drains the task queues. Handlers are
// registered on a ServeMux by the modules that own them.
func NewServer(cfg config.RedisConfig) *asynq.Server {
	return asynq.NewServer(redisOpt(cfg), asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"emails":  6,
			"default": 3,
		},
	})
}

// NewScheduler builds the cron scheduler that enqueues periodic tasks,
// currently just the nightly availability refresh sweep.
func NewScheduler(cfg config.RedisConfig) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(redisOpt(cfg), nil)

	task := asynq.NewTask(TaskTypeAvailabilityRefresh, nil)
	if _, err := scheduler.Register(AvailabilityRefreshSchedule, task, asynq.Queue("default")); err != nil {
		return nil, fmt.Errorf("register availability refresh: %w", err)
	}

	return scheduler, nil
}
