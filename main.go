package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourguide/config"
	"tourguide/cron"
	"tourguide/database"
	bookingRepo "tourguide/database/repository/booking"
	catalogRepo "tourguide/database/repository/catalog"
	contactRepo "tourguide/database/repository/contact"
	userRepo "tourguide/database/repository/user"
	"tourguide/handlers"
	"tourguide/metrics"
	"tourguide/middleware"
	"tourguide/resolvers"
	"tourguide/routes"
	"tourguide/services/booking"
	"tourguide/services/catalog"
	"tourguide/services/contact"
	"tourguide/services/notification"
	"tourguide/services/storage"
	"tourguide/services/tasks"
	"tourguide/services/user"
	"tourguide/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.InitDB(cfg.DatabaseURL); err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	if err := utils.InitAuthCache(); err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Redis: %v", err)
	}
	metrics.Register()

	// repositories.
	db := database.MongoClient.Database(cfg.DatabaseName)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	hotels := catalogRepo.NewMongoHotelRepo(db)
	cabs := catalogRepo.NewMongoCabRepo(db)
	destinations := catalogRepo.NewMongoDestinationRepo(db)
	contacts := contactRepo.NewMongoContactRepo(db)
	users := userRepo.NewMongoUserRepo(db)

	// background tasks.
	queueOpt := cron.QueueRedisOpt()
	queue := asynq.NewClient(queueOpt)
	defer queue.Close()
	worker, err := cron.StartReminderWorker(queueOpt, bookings, notification.LogNotifier{})
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	var images storage.ImageStore
	if cfg.CloudinaryURL != "" {
		store, err := storage.NewCloudinaryStore(cfg.CloudinaryURL)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
		}
		images = store
	} else {
		logger.Warn("CLOUDINARY_URL not set, image uploads disabled")
	}

	// services.
	tokens := utils.NewTokenStore(utils.GetAuthCacheClient())
	resolver := resolvers.NewReferenceResolver(hotels, cabs, destinations)
	bookingService := booking.NewBookingService(bookings, resolver, tasks.NewReminderScheduler(queue, cfg.ReminderLeadTime))
	catalogService := catalog.NewCatalogService(destinations, hotels, cabs, images)
	contactService := contact.NewContactService(contacts)
	userService := user.NewUserService(users, tokens, cfg.JWTTTL, cfg.AdminEmailList())

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, 30*time.Second, utils.GetAuthCacheClient(), database.MongoClient)

	handlerBundle := &handlers.HandlerBundle{
		Tokens:   tokens,
		Bookings: handlers.NewBookingHandler(bookingService),
		Auth:     handlers.NewAuthHandler(userService),
		Catalog:  handlers.NewCatalogHandler(catalogService),
		Contact:  handlers.NewContactHandler(contactService),
		Health:   handlers.NewHealthHandler(),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	stopMonitor()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
