// Package jobs provides scheduled background tasks for the medicine delivery
// service, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OutboxRelayJob runs every second and publishes the domain events that
// commands stored in the outbox table (order placed, status changed, driver
// assigned) to RabbitMQ. Notification senders consume them there.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(publishOutboxHandler, cfg.OutboxBatchSize, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed relay is logged and retried by the next tick; messages published
// before the failure are already marked and are not sent again.
package jobs
