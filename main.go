package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"youthcentre_backend/internals/configs"
	database "youthcentre_backend/internals/databases"
	activityModel "youthcentre_backend/internals/features/activities/model"
	adminModel "youthcentre_backend/internals/features/admins/model"
	chatModel "youthcentre_backend/internals/features/chats/model"
	inscriptionModel "youthcentre_backend/internals/features/inscriptions/model"
	inscriptionRepo "youthcentre_backend/internals/features/inscriptions/repository"
	inscriptionService "youthcentre_backend/internals/features/inscriptions/service"
	livestreamModel "youthcentre_backend/internals/features/livestreams/model"
	paymentModel "youthcentre_backend/internals/features/payments/model"
	userModel "youthcentre_backend/internals/features/users/model"
	centreModel "youthcentre_backend/internals/features/youth_centres/model"
	helper "youthcentre_backend/internals/helpers"
	"youthcentre_backend/internals/logger"
	middlewares "youthcentre_backend/internals/middlewares"
	routes "youthcentre_backend/internals/route"
	"youthcentre_backend/internals/scheduler"
	"youthcentre_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := logger.Init(logger.Config{Debug: cfg.LogDebug, LogToFile: cfg.LogToFile, LogsDir: cfg.LogsDir}); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app, cfg)

	// request timeout, aligned with statement_timeout in the DSN
	app.Use(func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	database.ConnectDB(cfg)
	database.TunePool()
	database.Migrate(
		&centreModel.YouthCentreModel{},
		&adminModel.AdminModel{},
		&adminModel.AdminSettingModel{},
		&userModel.UserModel{},
		&activityModel.ActivityModel{},
		&inscriptionModel.InscriptionModel{},
		&paymentModel.PaymentModel{},
		&chatModel.ChatModel{},
		&livestreamModel.LivestreamModel{},
	)
	database.WarmUpQueries()

	if err := database.ConnectRedis(cfg); err != nil {
		logger.Log.Warnf("redis unavailable, continuing without scope cache: %v", err)
	}

	if cfg.RunSeeds {
		if err := seeds.RunAllSeeds(database.DB, cfg.SeedsDir); err != nil {
			logger.Log.Fatalf("seeds: %v", err)
		}
	}

	reconciler, err := scheduler.StartParticipantsReconciler(cfg.ReconcileCron,
		inscriptionService.NewParticipantsReconciler(inscriptionRepo.NewInscriptionRepository(database.DB)))
	if err != nil {
		logger.Log.Fatalf("scheduler: %v", err)
	}

	routes.SetupRoutes(app, database.DB, cfg)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		logger.Log.Infof("listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			logger.Log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	<-reconciler.Stop().Done()

	database.CloseRedis()
	database.Close()
}
