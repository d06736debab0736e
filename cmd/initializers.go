package main

import (
	"fmt"
	"net/http"
	"time"

	"bitinglip/app/handler"
	"bitinglip/app/router"
	"bitinglip/internal/service"
	"bitinglip/pkg/auth"
	"bitinglip/pkg/config"
	"bitinglip/pkg/events"
	"bitinglip/pkg/logger"
	"bitinglip/pkg/monitoring"
	"bitinglip/pkg/store/memory"
	redisstore "bitinglip/pkg/store/redis"

	"github.com/gin-gonic/gin"
)

func (app *Application) initConfig() error {
	if err := config.Init(); err != nil {
		return err
	}
	app.config = config.GlobalConfig
	return nil
}

func (app *Application) initLogger() error {
	if err := logger.Init(app.config.Logger); err != nil {
		return err
	}
	app.registerCleanup(func() {
		logger.InfoCtx(app.ctx, "Logging system has been closed")
		logger.Sync()
	})
	return nil
}

func (app *Application) initRedis() error {
	if !app.config.Redis.Enabled() {
		logger.InfoCtx(app.ctx, "Redis address not configured, running single-instance")
		return nil
	}

	client, err := redisstore.NewRedisClient(app.config.Redis)
	if err != nil {
		return err
	}

	app.redisClient = client
	app.registerCleanup(func() {
		client.Close()
		logger.InfoCtx(app.ctx, "Redis connection has been closed")
	})

	return nil
}

func (app *Application) initEvents() error {
	buffer := app.config.Events.Buffer
	if app.redisClient != nil {
		app.bus = events.NewRedisBus(app.redisClient.GetClient(), app.config.Redis.Channel, buffer)
		logger.InfoCtx(app.ctx, "Event bus backed by redis channel %s", app.config.Redis.Channel)
	} else {
		app.bus = events.NewMemoryBus(buffer)
	}

	bus := app.bus
	app.registerCleanup(func() {
		if err := bus.Close(); err != nil {
			logger.WarnCtx(app.ctx, "Failed to close event bus: %v", err)
		}
	})
	return nil
}

func (app *Application) initStore() error {
	app.store = memory.NewSeededStore()
	return nil
}

func (app *Application) initServices() error {
	issuer := auth.NewIssuer(app.config.Auth.JWTSecret, time.Duration(app.config.Auth.TokenTTL)*time.Second)
	sampler := monitoring.NewUniformSampler(uint64(time.Now().UnixNano()))

	app.authService = service.NewAuthService(issuer, app.config.Auth.EmailDomain)
	app.modelService = service.NewModelService(app.store, app.bus)
	app.clusterService = service.NewClusterService(app.store, app.bus)
	app.taskService = service.NewTaskService(app.store, app.bus)
	app.workerService = service.NewWorkerService(app.store)
	app.monitoringService = service.NewMonitoringService(app.store, sampler, app.bus)
	return nil
}

func (app *Application) initHandlers() error {
	app.handlers = router.Handlers{
		Auth:       handler.NewAuthHandler(app.authService),
		Model:      handler.NewModelHandler(app.modelService),
		Cluster:    handler.NewClusterHandler(app.clusterService),
		Task:       handler.NewTaskHandler(app.taskService),
		Worker:     handler.NewWorkerHandler(app.workerService),
		Monitoring: handler.NewMonitoringHandler(app.monitoringService),
		Events:     handler.NewEventsHandler(app.bus),
		System:     handler.NewSystemHandler(app.config.Server.Service, app.config.Server.Version),
	}
	return nil
}

func (app *Application) initHTTPServer() error {
	// Set Gin mode
	gin.SetMode(app.config.Server.Mode)

	// Create Gin engine; recovery and logging come from the router's middleware
	app.ginEngine = gin.New()
	router.NewRouter(app.handlers, app.config.CORS.AllowedOrigins).Setup(app.ginEngine)

	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.ginEngine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return nil
}
