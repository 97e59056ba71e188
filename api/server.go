package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tauheed-akhtar/diabetes-predictor/api/handlers"
	"github.com/tauheed-akhtar/diabetes-predictor/api/middleware"
	"github.com/tauheed-akhtar/diabetes-predictor/api/websocket"
	_ "github.com/tauheed-akhtar/diabetes-predictor/docs"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/auth"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/events"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/metrics"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/model"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/predictor"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/report"
	"github.com/tauheed-akhtar/diabetes-predictor/pkg/config"
	"github.com/tauheed-akhtar/diabetes-predictor/pkg/database"
	"github.com/tauheed-akhtar/diabetes-predictor/pkg/database/queries"
)

type Server struct {
	router      *gin.Engine
	httpServer  *http.Server
	config      config.Config
	clf         model.Classifier
	db          *database.DB
	bus         *events.EventBus
	authService *auth.Service
	wsHub       *websocket.Hub
	wsBridge    *websocket.EventBridge
}

// NewServer wires the prediction pipeline behind the REST API. db may be
// nil; the audit endpoints then answer 503.
func NewServer(cfg config.Config, clf model.Classifier, db *database.DB, bus *events.EventBus) *Server {
	if cfg.App.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	authService := auth.NewService(
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTL,
		cfg.Auth.OperatorUsername,
		cfg.Auth.OperatorPasswordHash,
	)

	s := &Server{
		router:      router,
		config:      cfg,
		clf:         clf,
		db:          db,
		bus:         bus,
		authService: authService,
	}

	s.setupMiddleware()
	s.setupRoutes()

	if cfg.WebSocket.Enabled {
		s.wsHub = websocket.NewHub(cfg.WebSocket.BroadcastBuffer)
		go s.wsHub.Run()

		s.wsBridge = websocket.NewEventBridge(s.wsHub, bus.SubscribeAll())
		s.wsBridge.Start()

		s.router.GET("/ws", websocket.ServeWebSocket(s.wsHub))
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.TraceID())
	s.router.Use(middleware.RequestSizeLimit(s.config.API.MaxBodyBytes))

	rateLimiter := middleware.NewRateLimiter(s.config.API.RateLimit, time.Minute)
	s.router.Use(middleware.RateLimit(rateLimiter))
}

func (s *Server) setupRoutes() {
	// Pipeline dependencies
	pipeline := predictor.New(s.clf)
	reports := report.NewGenerator(nil)
	publisher := events.NewPublisher(s.bus)

	var audit *queries.PredictionRepository
	if s.db != nil {
		audit = queries.NewPredictionRepository(s.db.DB)
	}

	// Handlers
	healthHandler := handlers.NewHealthHandler(s.clf, s.db)
	authHandler := handlers.NewAuthHandler(s.authService)
	predictHandler := handlers.NewPredictHandler(pipeline, reports, publisher, audit)
	hospitalHandler := handlers.NewHospitalHandler()
	historyHandler := handlers.NewHistoryHandler(audit)

	// Public routes
	s.router.GET("/health", healthHandler.Health)
	s.router.GET("/health/ready", healthHandler.Ready)
	s.router.GET("/health/live", healthHandler.Live)
	s.router.GET("/metrics", metrics.Handler())
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	s.router.POST("/auth/login", middleware.AuthRateLimiter(), authHandler.Login)

	// Prediction routes
	s.router.POST("/predict", predictHandler.Predict)
	s.router.POST("/predict/report", predictHandler.Report)
	s.router.GET("/predict/defaults", predictHandler.Defaults)
	s.router.GET("/hospitals", hospitalHandler.List)

	// Protected routes
	protected := s.router.Group("/")
	protected.Use(middleware.JWTAuth(s.authService))
	{
		protected.GET("/predictions", historyHandler.List)
		protected.GET("/predictions/stats", historyHandler.Stats)
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.API.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.API.ReadTimeout,
		WriteTimeout: s.config.API.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.wsBridge != nil {
		s.wsBridge.Stop()
	}

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}
