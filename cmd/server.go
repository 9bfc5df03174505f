package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"painterbook/config"
	"painterbook/cron"
	"painterbook/database"
	"painterbook/handlers"
	"painterbook/middleware"
	"painterbook/routes"
	"painterbook/services/availability"
	"painterbook/services/booking"
	"painterbook/services/notification"
	"painterbook/services/scheduling"
	"painterbook/services/tasks"
	"painterbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServerCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the booking API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				config.AppConfig.AppPort = port
			}
			return runServer()
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides APP_PORT)")
	return cmd
}

func runServer() error {
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openStores(ctx, logger)
	if err != nil {
		return err
	}
	defer s.Close(context.Background())

	engine := &scheduling.DefaultMatchingEngine{
		Availability: s.Availability,
		Bookings:     s.Bookings,
		Weights:      engineWeights(),
		Logger:       logger.Named("scheduling"),
	}
	bookingService := &booking.DefaultBookingService{
		Engine:          engine,
		Bookings:        s.Bookings,
		SuggestionLimit: config.AppConfig.SuggestionLimit,
		Logger:          logger.Named("booking"),
	}
	availabilityService := availability.NewAvailabilityService(s.Availability, logger.Named("availability"))

	// Redis backs idempotent replay and painter reminders. Both are optional.
	var idempotency gin.HandlerFunc
	if config.AppConfig.RedisAddr != "" {
		if err := utils.InitCache(); err != nil {
			logger.Warn("Redis cache unavailable, idempotency disabled", zap.Error(err))
		} else {
			idempotency = middleware.Idempotency(utils.GetCacheClient(), config.AppConfig.IdempotencyTTL)
		}

		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		})
		defer asynqClient.Close()
		bookingService.Reminders = tasks.NewAsynqReminderScheduler(asynqClient, config.AppConfig.ReminderLead, logger.Named("reminders"))

		notificationService, err := notification.NewLogNotificationService(logger.Named("notification"))
		if err != nil {
			return err
		}
		worker := cron.InitReminderWorker(s.Bookings, notificationService, logger.Named("worker"))
		defer worker.Shutdown()
	}

	health, err := cron.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient, logger)
	if err != nil {
		return err
	}
	defer health.Stop()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, handlers.NewHandlerBundle(availabilityService, bookingService, engine, idempotency))

	port := config.AppConfig.AppPort
	if port == "" {
		port = "3001"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	logger.Sugar().Info("server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Sugar().Info("server stopped gracefully")
	return nil
}
