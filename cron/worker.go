package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"tourguide/config"
	"tourguide/metrics"
	"tourguide/models"
	"tourguide/services/notification"
	"tourguide/services/tasks"
	"tourguide/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingLookup is the part of the booking repository the worker needs.
type BookingLookup interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

// QueueRedisOpt returns the asynq connection for REDIS_QUEUE_DB.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// StartReminderWorker runs the reminder worker in the background. Call Shutdown on the result to stop it.
func StartReminderWorker(redisOpt asynq.RedisClientOpt, repo BookingLookup, notifier notification.Notifier) (*asynq.Server, error) {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: utils.GetLogger().Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCheckInReminder, HandleCheckInReminder(repo, notifier))

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("failed to start reminder worker: %w", err)
	}
	utils.GetLogger().Info("Reminder worker started", zap.Int("queueDB", redisOpt.DB))
	return srv, nil
}

// HandleCheckInReminder reloads the booking and reminds its owner unless it is no longer confirmed.
func HandleCheckInReminder(repo BookingLookup, notifier notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("invalid reminder payload: %v: %w", err, asynq.SkipRetry)
		}

		b, err := repo.GetByID(ctx, p.BookingID)
		if err != nil {
			return fmt.Errorf("failed to load booking %s: %w", p.BookingID, err)
		}
		if b == nil || b.BookingStatus != models.BookingStatusConfirmed {
			logger.Info("Skipping reminder", zap.String("bookingId", p.BookingID))
			metrics.IncReminder("skipped")
			return nil
		}

		if err := notifier.NotifyCheckIn(ctx, *b); err != nil {
			logger.Warn("Failed to deliver reminder", zap.String("bookingId", b.ID), zap.Error(err))
			return err
		}
		metrics.IncReminder("delivered")
		return nil
	}
}
