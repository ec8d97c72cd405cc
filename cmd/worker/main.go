package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"afriverse.co/editorial/common/id"
	"afriverse.co/editorial/common/logger"
	"afriverse.co/editorial/core/config"
	"afriverse.co/editorial/core/db"
	"afriverse.co/editorial/internal/notify"
	"afriverse.co/editorial/internal/queue"
	"afriverse.co/editorial/internal/service"
	"afriverse.co/editorial/internal/store"
	"afriverse.co/editorial/internal/worker"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)
	logger.Setup(cfg)

	slog.InfoContext(ctx, "editorial worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Notify.RedisGroup,
		"consumer_name", cfg.Notify.RedisConsumer)

	// Different node ID than the API server so snowflakes never collide.
	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Notify.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Notify.RedisStream)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Notify.RedisStream,
		Group:        cfg.Notify.RedisGroup,
		Consumer:     cfg.Notify.RedisConsumer,
		DLQStream:    cfg.Notify.RedisDLQStream,
		BatchSize:    1, // Deliver one notification at a time
		Block:        5 * time.Second,
		MaxAttempts:  3,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	stores := store.NewStores(database.Queries())
	mailer := notify.NewMailer(cfg.Mail)
	if !cfg.Mail.Enabled() {
		slog.WarnContext(ctx, "no mail API key configured, notifications will only be logged")
	}

	processor := worker.NewNotifier(stores.Posts(), stores.Reviews(), stores.Users(), mailer, cfg.StudioURL)

	w := worker.New(consumer, processor, worker.Config{
		MaxAttempts: 3,
	})

	reclaimer := worker.NewRedisReclaimer(redisClient, worker.RedisReclaimerConfig{
		Stream:    cfg.Notify.RedisStream,
		Group:     cfg.Notify.RedisGroup,
		Consumer:  cfg.Notify.RedisConsumer + "-reclaimer",
		MinIdle:   5 * time.Minute,
		Interval:  1 * time.Minute,
		BatchSize: 10,
	}, consumer, w.ProcessMessage)

	sweepInterval, err := time.ParseDuration(cfg.Publishing.SweepInterval)
	if err != nil {
		slog.WarnContext(ctx, "invalid sweep interval, using default", "value", cfg.Publishing.SweepInterval)
		sweepInterval = 0
	}
	// The sweeper enqueues post.published events back onto the same
	// stream this worker consumes.
	eventProducer := queue.NewRedisProducer(redisClient, cfg.Notify.RedisStream, nil)
	defer eventProducer.Close()

	services := service.NewServices(stores, service.NewTxRunner(database), eventProducer, cfg)
	sweeper := worker.NewSweeper(services.Publisher(), sweepInterval)

	errCh := make(chan error, 3)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go func() {
		reclaimer.Run(ctx)
		errCh <- nil
	}()
	go func() {
		sweeper.Run(ctx)
		errCh <- nil
	}()

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Stop the periodic loops first, then the consumer loop.
	sweeper.Stop()
	reclaimer.Stop()
	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
███╗   ██╗ ██████╗ ████████╗██╗███████╗██╗███████╗██████╗
████╗  ██║██╔═══██╗╚══██╔══╝██║██╔════╝██║██╔════╝██╔══██╗
██╔██╗ ██║██║   ██║   ██║   ██║█████╗  ██║█████╗  ██████╔╝
██║╚██╗██║██║   ██║   ██║   ██║██╔══╝  ██║██╔══╝  ██╔══██╗
██║ ╚████║╚██████╔╝   ██║   ██║██║     ██║██║     ██║  ██║
██║  ╚███║ ╚═════╝    ██║   ██║██║     ██║██║     ██║  ██║
╚═╝   ╚══╝            ╚═╝   ╚═╝╚═╝     ╚═╝╚═╝     ╚═╝  ╚═╝
`
