package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/quangdng/devlink/adapters/event"
	"github.com/quangdng/devlink/adapters/persistence"
	feedUC "github.com/quangdng/devlink/internal/application/usecase/feed"
	"github.com/quangdng/devlink/internal/config"
	"github.com/quangdng/devlink/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting DevLink feed worker...")

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	feedCache := persistence.NewRedisFeedCache(redisClient)
	processUseCase := feedUC.NewProcessPostEventUseCase(feedCache, appLogger)

	postConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPostEvents,
		GroupID:  "feed-worker-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer postConsumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicPostEvents))

	ctx := context.Background()
	for {
		msg, err := postConsumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.PostEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("Failed to unmarshal event, skipping", err, zap.String("key", string(msg.Key)))
			continue
		}

		if err := processUseCase.Execute(ctx, payload); err != nil {
			appLogger.Error("Failed to process event", err,
				zap.String("event_type", string(payload.EventType)),
				zap.String("post_id", payload.PostID.String()))
		}
	}
}
