package router

import (
	"bitinglip/app/handler"
	"bitinglip/app/middleware"

	"github.com/gin-gonic/gin"
)

// Router Router
type Router struct {
	authHandler       *handler.AuthHandler
	modelHandler      *handler.ModelHandler
	clusterHandler    *handler.ClusterHandler
	taskHandler       *handler.TaskHandler
	workerHandler     *handler.WorkerHandler
	monitoringHandler *handler.MonitoringHandler
	eventsHandler     *handler.EventsHandler
	systemHandler     *handler.SystemHandler
	allowedOrigins    []string
}

// Handlers groups the handlers the router dispatches to
type Handlers struct {
	Auth       *handler.AuthHandler
	Model      *handler.ModelHandler
	Cluster    *handler.ClusterHandler
	Task       *handler.TaskHandler
	Worker     *handler.WorkerHandler
	Monitoring *handler.MonitoringHandler
	Events     *handler.EventsHandler
	System     *handler.SystemHandler
}

// NewRouter creates a new Router
func NewRouter(h Handlers, allowedOrigins []string) *Router {
	return &Router{
		authHandler:       h.Auth,
		modelHandler:      h.Model,
		clusterHandler:    h.Cluster,
		taskHandler:       h.Task,
		workerHandler:     h.Worker,
		monitoringHandler: h.Monitoring,
		eventsHandler:     h.Events,
		systemHandler:     h.System,
		allowedOrigins:    allowedOrigins,
	}
}

// Setup sets up routes
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(r.allowedOrigins))
	engine.Use(middleware.Logger())

	api := engine.Group("/api/v1")
	{
		// Mock auth, always succeeds
		auth := api.Group("/auth")
		{
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/refresh", r.authHandler.Refresh)
			auth.GET("/profile", r.authHandler.Profile)
			auth.POST("/logout", r.authHandler.Logout)
		}

		models := api.Group("/models")
		{
			models.GET("", r.modelHandler.ListModels)
			models.GET("/:id", r.modelHandler.GetModel)
			models.GET("/:id/tasks", r.modelHandler.ListModelTasks)
			models.POST("/:id/deploy", r.modelHandler.DeployModel)
		}

		clusters := api.Group("/clusters")
		{
			clusters.GET("", r.clusterHandler.ListClusters)
			clusters.POST("", r.clusterHandler.CreateCluster)
			clusters.GET("/:id", r.clusterHandler.GetCluster)
			clusters.GET("/:id/workers", r.clusterHandler.ListClusterWorkers)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", r.taskHandler.ListTasks)
			tasks.POST("", r.taskHandler.CreateTask)
			tasks.GET("/queue/stats", r.taskHandler.QueueStats)
			tasks.GET("/:id", r.taskHandler.GetTask)
		}

		workers := api.Group("/workers")
		{
			workers.GET("", r.workerHandler.ListWorkers)
			workers.GET("/:id", r.workerHandler.GetWorker)
		}

		monitoring := api.Group("/monitoring")
		{
			monitoring.GET("/system", r.monitoringHandler.GetSystemMetrics)
			monitoring.GET("/alerts", r.monitoringHandler.GetAlerts)
		}
	}

	if r.eventsHandler != nil {
		engine.GET("/ws", r.eventsHandler.Stream)
	}

	engine.GET("/health", r.systemHandler.Health)
	engine.GET("/", r.systemHandler.Root)

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(handler.NotFound)
	engine.NoMethod(handler.MethodNotAllowed)
}
