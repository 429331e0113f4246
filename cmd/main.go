package main

import (
	"context"
	"log"

	"storefront-service/config"
	authHandler "storefront-service/internal/module/auth/handler"
	authRepositories "storefront-service/internal/module/auth/repositories"
	authUsecases "storefront-service/internal/module/auth/usecases"
	eventHandler "storefront-service/internal/module/event/handler"
	eventRepositories "storefront-service/internal/module/event/repositories"
	eventUsecases "storefront-service/internal/module/event/usecases"
	registrationHandler "storefront-service/internal/module/registration/handler"
	registrationRepositories "storefront-service/internal/module/registration/repositories"
	registrationUsecases "storefront-service/internal/module/registration/usecases"
	statsHandler "storefront-service/internal/module/stats/handler"
	statsRepositories "storefront-service/internal/module/stats/repositories"
	statsUsecases "storefront-service/internal/module/stats/usecases"
	"storefront-service/internal/pkg/backend"
	"storefront-service/internal/pkg/cache"
	"storefront-service/internal/pkg/clock"
	"storefront-service/internal/pkg/debounce"
	"storefront-service/internal/pkg/helpers"
	"storefront-service/internal/pkg/http"
	"storefront-service/internal/pkg/httpclient"
	"storefront-service/internal/pkg/lock"
	log_internal "storefront-service/internal/pkg/log"
	"storefront-service/internal/pkg/messagestream"
	"storefront-service/internal/pkg/middleware"
	"storefront-service/internal/pkg/redis"
	"storefront-service/internal/pkg/scheduler"
	router "storefront-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, messageRouters := initService(ctx, cfg)

	for _, router := range messageRouters {
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port, cfg.HttpServer.ShutdownTimeout)
}

func initService(ctx context.Context, cfg *config.Config) (*fiber.App, []*message.Router) {

	// init redis
	redis := redis.SetupClient(&cfg.Redis)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	otelLogger := log_internal.Setup()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	backendClient := backend.New(cfg.Backend.BaseURL, httpClient, logger)

	clk := clock.Real()
	validator := helpers.NewValidator()

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	var subscriber message.Subscriber
	if err == nil {
		// Init Subscriber
		subscriber, err = amqp.NewSubscriber()
	}
	if err != nil {
		logger.Error(ctx, "Failed to connect message broker, falling back to in-process delivery", err)
		inProcess := messagestream.NewInProcess()
		publisher, subscriber = inProcess, inProcess
	}

	// init scheduler
	sch := scheduler.Scheduler{Log: logger}
	asynqClient := sch.InitClient(&cfg.Redis)

	// auth
	authRepo := authRepositories.New(backendClient, logger, redis)
	authUsecase := authUsecases.New(authRepo, logger, clk)
	authHandlerInit := authHandler.AuthHandler{
		Log:       otelLogger,
		Validator: validator,
		Usecase:   authUsecase,
	}

	// event
	eventRepo := eventRepositories.New(backendClient, logger, cache.New(redis, cfg.Cache.TTL, logger), asynqClient)
	eventUsecase := eventUsecases.New(eventRepo, logger, publisher, clk, debounce.New(clk, cfg.Search.Debounce), cfg.Search.PageSize)
	eventHandlerInit := eventHandler.EventHandler{
		Log:       otelLogger,
		Validator: validator,
		Usecase:   eventUsecase,
	}

	// registration
	registrationRepo := registrationRepositories.New(backendClient, logger, lock.New(redis))
	registrationUsecase := registrationUsecases.New(registrationRepo, logger, publisher, clk, cfg.Registration.MaxTickets)
	registrationHandlerInit := registrationHandler.RegistrationHandler{
		Log:       otelLogger,
		Validator: validator,
		Usecase:   registrationUsecase,
	}

	// stats
	statsRepo := statsRepositories.New(backendClient, logger)
	statsUsecase := statsUsecases.New(statsRepo, logger, clk)
	statsHandlerInit := statsHandler.StatsHandler{
		Log:       otelLogger,
		Validator: validator,
		Usecase:   statsUsecase,
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, clk)
	go limiter.StartEviction(ctx)

	middleware := middleware.Middleware{
		Log:   otelLogger,
		Repo:  authRepo,
		Clock: clk,
	}

	var messageRouters []*message.Router

	eventChangedRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisoned, "event_changed_handler", messagestream.TopicEventChanged, subscriber, eventHandlerInit.ConsumeEventChanged)
	if err != nil {
		logger.Error(ctx, "Failed to create event_changed router", err)
	} else {
		messageRouters = append(messageRouters, eventChangedRouter)
	}

	// start scheduler
	if cfg.Scheduler.MonitoringEnabled {
		go sch.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)
	}
	go sch.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency,
		[]string{scheduler.TypePurgeEventCache},
		[]func(ctx context.Context, t *asynq.Task) error{eventHandlerInit.PurgeEventCache},
	)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, router.Handlers{
		Auth:         &authHandlerInit,
		Event:        &eventHandlerInit,
		Registration: &registrationHandlerInit,
		Stats:        &statsHandlerInit,
	}, &middleware, limiter)

	return r, messageRouters

}
