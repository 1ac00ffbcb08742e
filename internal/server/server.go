package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/docs"
	"taskboard/internal/auth"
	"taskboard/internal/cache"
	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/mailer"
	"taskboard/internal/metrics"
	"taskboard/internal/middleware"
	"taskboard/internal/migrations"
	"taskboard/internal/repository"
	"taskboard/internal/service"
	"taskboard/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Cache  *cache.Client
	Config *config.Config
	Logger *zap.Logger
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Users  *handler.UserHandler
	Boards *handler.BoardHandler
	Lists  *handler.ListHandler
	Cards  *handler.CardHandler
}

func Init(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	ctx := context.Background()

	gormCfg := &gorm.Config{}
	if cfg.IsProduction() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	logger.Info("connected to database", zap.String("host", cfg.DBHost), zap.String("name", cfg.DBName))

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := migrations.Up(sqlDB); err != nil {
		return nil, err
	}
	if v, dirty, err := migrations.Version(sqlDB); err == nil {
		logger.Info("schema ready", zap.Uint("version", v), zap.Bool("dirty", dirty))
	}

	redisClient := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := redisClient.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, password resets will fail", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	var avatars service.AvatarStorage
	if cfg.S3.Enabled() {
		client, err := storage.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		store := storage.NewAvatarStore(client, cfg.S3)
		if err := store.EnsureBucket(ctx); err != nil {
			logger.Warn("avatar bucket check failed", zap.String("bucket", cfg.S3.Bucket), zap.Error(err))
		}
		avatars = store
	} else {
		logger.Info("S3_BUCKET not set, profile picture uploads are disabled")
	}

	var mail mailer.Mailer = mailer.NewLogMailer(logger)
	if cfg.SMTPAddr != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom)
	}

	m := metrics.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewListRepository(db)
	cardRepo := repository.NewCardRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthDeps{
		Users:        userRepo,
		Tokens:       tokens,
		Resets:       auth.NewResetTokenStore(redisClient, cfg.ResetTokenTTL),
		Mailer:       mail,
		Avatars:      avatars,
		ResetURLBase: cfg.ResetURLBase,
		Metrics:      m,
		Logger:       logger,
	})
	boardService := service.NewBoardService(boardRepo)
	listService := service.NewListService(boardRepo, listRepo, m)
	cardService := service.NewCardService(boardRepo, listRepo, cardRepo, commentRepo, m)

	h := Handlers{
		Users:  handler.NewUserHandler(authService, logger),
		Boards: handler.NewBoardHandler(boardService, logger),
		Lists:  handler.NewListHandler(listService, logger),
		Cards:  handler.NewCardHandler(cardService, logger),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		Engine: NewRouter(cfg, logger, tokens, m, h),
		DB:     db,
		Cache:  redisClient,
		Config: cfg,
		Logger: logger,
	}, nil
}

func NewRouter(cfg *config.Config, logger *zap.Logger, tokens middleware.TokenParser, m *metrics.Metrics, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), m.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := r.Group("/api")

	// Public routes
	public := apiGroup.Group("/auth", middleware.NewRateLimiter(cfg.AuthRateLimit).Middleware())
	{
		public.POST("/register", h.Users.Register)
		public.POST("/login", h.Users.Login)
		public.POST("/forgot-password", h.Users.ForgotPassword)
		public.POST("/reset-password", h.Users.ResetPassword)
	}

	// Protected routes - require authentication
	authorized := apiGroup.Group("")
	authorized.Use(middleware.JWTAuthMiddleware(tokens))
	{
		authorized.GET("/auth/me", h.Users.Me)
		authorized.PATCH("/auth/change-password", h.Users.ChangePassword)
		authorized.POST("/auth/upload-profile-picture", h.Users.UploadProfilePicture)

		// Board routes
		authorized.GET("/boards", h.Boards.GetAll)
		authorized.POST("/boards", h.Boards.Create)
		authorized.DELETE("/boards/:id", h.Boards.Delete)

		// List routes
		authorized.GET("/lists/board/:boardId", h.Lists.GetByBoard)
		authorized.POST("/lists", h.Lists.Create)
		authorized.PATCH("/lists/reorder", h.Lists.Reorder)
		authorized.PATCH("/lists/:id", h.Lists.Update)
		authorized.DELETE("/lists/:id", h.Lists.Delete)

		// Card routes
		authorized.GET("/cards/my-tasks", h.Cards.MyTasks)
		authorized.GET("/cards/list/:listId", h.Cards.GetByList)
		authorized.POST("/cards", h.Cards.Create)
		authorized.PATCH("/cards/reorder", h.Cards.Reorder)
		authorized.PATCH("/cards/:id", h.Cards.Update)
		authorized.DELETE("/cards/:id", h.Cards.Delete)
		authorized.POST("/cards/:id/comments", h.Cards.AddComment)
		authorized.DELETE("/cards/:id/comments/:commentId", h.Cards.DeleteComment)
	}

	return r
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to listen: %w", err)
	case <-quit:
	}
	s.Logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if err := s.Cache.Close(); err != nil {
		s.Logger.Warn("closing redis", zap.Error(err))
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	s.Logger.Info("server exited properly")
	return nil
}
