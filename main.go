package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kino/config"
	"kino/cron"
	"kino/database"
	"kino/database/repository"
	"kino/handlers"
	"kino/middleware"
	"kino/routes"
	"kino/services/customer"
	"kino/services/hall"
	"kino/services/moviesession"
	"kino/services/tasks"
	"kino/services/ticket"
	"kino/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitRedis()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()
	utils.StartHealthMonitor(rootCtx, []*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

	// repositories.
	repos := repository.NewMongoRepositories()
	tokenStore := utils.NewRedisTokenStore(utils.GetAuthCacheClient())

	// services.
	customerService := &customer.DefaultCustomerService{
		Repo:     repos.Customers,
		Tokens:   tokenStore,
		TokenTTL: config.AppConfig.TokenTTL,
	}
	if username := config.AppConfig.AdminUsername; username != "" {
		if err := customerService.EnsureAdmin(rootCtx, username, config.AppConfig.AdminPassword); err != nil {
			logger.Fatal("main: failed to seed admin", zap.Error(err))
		}
	}

	hallService := &hall.DefaultHallService{
		Repo:     repos.Halls,
		Sessions: repos.Sessions,
		Tickets:  repos.Tickets,
	}

	sessionService := &moviesession.DefaultMovieSessionService{
		Repo:    repos.Sessions,
		Halls:   repos.Halls,
		Tickets: repos.Tickets,
		Locker:  utils.NewRedisLocker(utils.GetCacheClient()),
		LockTTL: config.AppConfig.HallLockTTL,
	}

	asynqClient := asynq.NewClient(cron.RedisOpt())
	defer asynqClient.Close()
	reminderWorker := cron.InitReminderWorker(repos.Tickets)

	ticketService := &ticket.DefaultTicketService{
		Tickets:   repos.Tickets,
		Sessions:  repos.Sessions,
		Customers: repos.Customers,
		Reminders: &tasks.AsynqReminderScheduler{Client: asynqClient},
		LeadTime:  config.AppConfig.ReminderLeadTime,
		Currency:  config.AppConfig.Currency,
	}
	if config.AppConfig.StripeKey != "" {
		stripe.Key = config.AppConfig.StripeKey
		ticketService.Payments = ticket.StripeGateway{}
	} else {
		logger.Info("main: STRIPE_KEY not set, tickets are sold without payment intents")
	}

	customerHandler := handlers.NewCustomerHandler(customerService)
	hallHandler := handlers.NewHallHandler(hallService)
	sessionHandler := handlers.NewMovieSessionHandler(sessionService)
	ticketHandler := handlers.NewTicketHandler(ticketService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Tokens: tokenStore,

		RegisterHandler:      customerHandler.RegisterHandler,
		TokenHandler:         customerHandler.TokenHandler,
		LogoutHandler:        customerHandler.LogoutHandler,
		ListCustomersHandler: customerHandler.ListCustomersHandler,

		ListHallsHandler:  hallHandler.ListHallsHandler,
		GetHallHandler:    hallHandler.GetHallHandler,
		CreateHallHandler: hallHandler.CreateHallHandler,
		UpdateHallHandler: hallHandler.UpdateHallHandler,

		ListSessionsHandler:   sessionHandler.ListSessionsHandler,
		GetSessionHandler:     sessionHandler.GetSessionHandler,
		CreateSessionsHandler: sessionHandler.CreateSessionsHandler,
		UpdateSessionHandler:  sessionHandler.UpdateSessionHandler,
		DeleteSessionHandler:  sessionHandler.DeleteSessionHandler,

		PurchaseTicketHandler: ticketHandler.PurchaseTicketHandler,
		ListTicketsHandler:    ticketHandler.ListTicketsHandler,

		HealthHandler: handlers.HealthHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	reminderWorker.Shutdown()
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
