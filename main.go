package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberpro-backend/config"
	"barberpro-backend/controllers"
	"barberpro-backend/jobs"
	"barberpro-backend/models"
	"barberpro-backend/notifier"
	"barberpro-backend/repository"
	"barberpro-backend/routes"
	"barberpro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const serviceName = "barberpro-api"

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	logger, err := config.NewLogger(gin.Mode() == gin.DebugMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		logger.Fatal("failed to enable uuid-ossp", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.Product{},
		&models.Partnership{},
		&models.Settings{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.AppointmentProduct{},
	); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	notifiers := notifier.Fanout{}
	var (
		kafkaPub *notifier.KafkaPublisher
		queue    *controllers.QueueController
	)
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub = notifier.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, serviceName, 1024, logger)
		kafkaPub.Start(ctx)
		notifiers = append(notifiers, kafkaPub)
	}
	if cfg.RedisAddr != "" {
		rdb, err := config.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rdb.Close()
		board := notifier.NewQueueBoard(rdb, logger)
		notifiers = append(notifiers, board)
		queue = &controllers.QueueController{Board: board}
	}
	if cfg.TwilioAccountSID != "" {
		notifiers = append(notifiers, notifier.NewSMSNotifier(
			cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber, logger))
	}

	var notify services.AppointmentNotifier = notifier.Nop{}
	if len(notifiers) > 0 {
		notify = notifiers
	}

	settingsRepo := repository.NewSettingsRepository(db)
	engine := services.NewAppointmentService(services.Dependencies{
		Store:        repository.NewAppointmentRepository(db),
		Customers:    repository.NewCustomerRepository(db),
		Staff:        repository.NewUserRepository(db),
		Services:     repository.NewServiceRepository(db),
		Products:     repository.NewProductRepository(db),
		Partnerships: repository.NewPartnershipRepository(db),
		Fees:         settingsRepo,
		Notifier:     notify,
		Logger:       logger,
	})

	scheduler, err := jobs.NewDailyReport(engine, logger).Schedule(cfg.ReportCron)
	if err != nil {
		logger.Fatal("invalid report schedule", zap.String("spec", cfg.ReportCron), zap.Error(err))
	}

	r := routes.SetupRouter(routes.Handlers{
		Appointments: controllers.NewAppointmentController(engine),
		Settings:     &controllers.SettingsController{Store: settingsRepo},
		Queue:        queue,
	}, cfg.AllowedOrigins, logger)
	printRoutes(r)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("HTTP listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	<-scheduler.Stop().Done()
	if kafkaPub != nil {
		kafkaPub.Close()
		kafkaPub.WaitClosed()
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
