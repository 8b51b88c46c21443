package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meddelivery/cmd"
	httpadapter "meddelivery/internal/adapters/in/http"
	"meddelivery/internal/adapters/out/postgres/migrations"
	"meddelivery/internal/adapters/out/rabbitmq"
	"meddelivery/internal/jobs"

	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err = configs.ValidateServer(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if err = migrations.Up(configs.PostgresDSN(), logger); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	gormDB, err := gorm.Open(postgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	amqpConn, err := amqp.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer amqpConn.Close()

	exchange := configs.RabbitMQExchange
	if exchange == "" {
		exchange = rabbitmq.DefaultExchange
	}
	publisher, err := rabbitmq.NewPublisher(amqpConn, exchange)
	if err != nil {
		log.Fatalf("Error creating RabbitMQ publisher: %v", err)
	}
	defer publisher.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreatePublishOutboxCommandHandler(publisher), configs.OutboxBatchSize, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = startWebServer(ctx, &app, configs.HTTPPort, logger); err != nil {
		logger.Error("Web server stopped with error", "error", err)
	}
}

// startWebServer serves until ctx is done, then shuts down gracefully.
func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	issuer, err := app.CreateTokenIssuer()
	if err != nil {
		return err
	}
	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), issuer)
	if err != nil {
		return err
	}
	e.HideBanner = true

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()
	logger.Info("Web server started", "port", port)

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("Shutting down web server")
	return e.Shutdown(shutdownCtx)
}
