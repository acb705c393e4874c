package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/quangdng/devlink/adapters/event"
	httpAdapter "github.com/quangdng/devlink/adapters/http"
	"github.com/quangdng/devlink/adapters/media_storage"
	"github.com/quangdng/devlink/adapters/persistence"
	accountUC "github.com/quangdng/devlink/internal/application/usecase/account"
	authUC "github.com/quangdng/devlink/internal/application/usecase/auth"
	feedUC "github.com/quangdng/devlink/internal/application/usecase/feed"
	postUC "github.com/quangdng/devlink/internal/application/usecase/post"
	profileUC "github.com/quangdng/devlink/internal/application/usecase/profile"
	"github.com/quangdng/devlink/internal/config"
	"github.com/quangdng/devlink/pkg/auth"
	"github.com/quangdng/devlink/pkg/logger"
	"github.com/quangdng/devlink/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting DevLink API server...")

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "devlink-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Warn("Kafka not configured, events disabled", zap.Error(err))
		kafkaClient = nil
	} else {
		defer kafkaClient.Close()
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	postRepo := persistence.NewPostgresPostRepo(dbPool)
	profileCache := persistence.NewRedisProfileCache(redisClient)
	feedCache := persistence.NewRedisFeedCache(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Warn("Cloudinary not configured, avatar upload disabled", zap.Error(err))
		uploader = nil
	}

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	currentUserUseCase := authUC.NewCurrentUserUseCase(userRepo)
	uploadAvatarUseCase := authUC.NewUploadAvatarUseCase(userRepo, uploader, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, profileCache, appLogger)
	deleteAccountUseCase := accountUC.NewDeleteAccountUseCase(profileRepo, userRepo, profileCache, kafkaClient, appLogger)
	createPostUseCase := postUC.NewCreatePostUseCase(postRepo, userRepo, kafkaClient, appLogger)
	listPostsUseCase := postUC.NewListPostsUseCase(postRepo)
	getPostUseCase := postUC.NewGetPostUseCase(postRepo)
	deletePostUseCase := postUC.NewDeletePostUseCase(postRepo, kafkaClient, appLogger)
	likePostUseCase := postUC.NewLikePostUseCase(postRepo, kafkaClient, appLogger)
	commentPostUseCase := postUC.NewCommentPostUseCase(postRepo, userRepo, kafkaClient, appLogger)
	recentFeedUseCase := feedUC.NewRecentFeedUseCase(feedCache, postRepo)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, currentUserUseCase)
	userHandler := httpAdapter.NewUserHandler(registerUseCase, uploadAvatarUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, deleteAccountUseCase)
	postHandler := httpAdapter.NewPostHandler(
		createPostUseCase,
		listPostsUseCase,
		getPostUseCase,
		deletePostUseCase,
		likePostUseCase,
		commentPostUseCase,
	)
	feedHandler := httpAdapter.NewFeedHandler(recentFeedUseCase)

	router := httpAdapter.NewRouter(
		authHandler,
		userHandler,
		profileHandler,
		postHandler,
		feedHandler,
		httpAdapter.AuthMiddleware(jwtSvc),
		httpAdapter.ErrorMiddleware(appLogger),
	)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
