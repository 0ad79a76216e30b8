package cron

import (
	"context"
	"log"
	"time"

	"wanderly/config"
	"wanderly/services/booking"

	"github.com/hibiken/asynq"
)

const TypeBookingCompleteExpired = "booking:complete_expired"

// InitCompletionWorker runs the background worker and scheduler that sweep
// confirmed bookings past their end date into the completed state.
func InitCompletionWorker(bookingSvc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingCompleteExpired, handleCompletionSweep(bookingSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[CompletionWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CompletionWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CompletionWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runSweepScheduler(redisOpts)
}

func handleCompletionSweep(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := bookingSvc.CompleteExpired(ctx)
		if err != nil {
			log.Printf("[CompletionWorker] ❌ Sweep failed: %v", err)
			return err
		}
		if n > 0 {
			log.Printf("[CompletionWorker] ✅ Completed %d expired bookings", n)
		}
		return nil
	}
}

// runSweepScheduler enqueues the sweep task on the configured cadence.
func runSweepScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, nil)

	spec := config.AppConfig.CompletionSweepSpec
	if spec == "" {
		spec = "@every 1h"
	}

	if _, err := scheduler.Register(spec, asynq.NewTask(TypeBookingCompleteExpired, nil)); err != nil {
		log.Printf("[CompletionWorker] ❌ Failed to register sweep schedule: %v", err)
		return
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[CompletionWorker] ❌ Scheduler stopped: %v", err)
	}
}
