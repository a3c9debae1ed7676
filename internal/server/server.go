package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"anoa.com/nftmarketplace/internal/bootstrap"
	"anoa.com/nftmarketplace/internal/config"
	"anoa.com/nftmarketplace/internal/middleware"
	"anoa.com/nftmarketplace/pkg/cache"
	"anoa.com/nftmarketplace/pkg/logger"
	"anoa.com/nftmarketplace/pkg/response"
	"anoa.com/nftmarketplace/pkg/session"
	"anoa.com/nftmarketplace/pkg/storage"
	"anoa.com/nftmarketplace/pkg/validator"

	analyticsHttp "anoa.com/nftmarketplace/internal/modules/analytics/delivery/http"
	analyticsService "anoa.com/nftmarketplace/internal/modules/analytics/service"

	auctionHttp "anoa.com/nftmarketplace/internal/modules/auction/delivery/http"
	auctionRepo "anoa.com/nftmarketplace/internal/modules/auction/repository"
	auctionService "anoa.com/nftmarketplace/internal/modules/auction/service"

	catalogHttp "anoa.com/nftmarketplace/internal/modules/catalog/delivery/http"

	dashboardHttp "anoa.com/nftmarketplace/internal/modules/dashboard/delivery/http"
	dashboardService "anoa.com/nftmarketplace/internal/modules/dashboard/service"

	exhibitionHttp "anoa.com/nftmarketplace/internal/modules/exhibition/delivery/http"
	exhibitionDto "anoa.com/nftmarketplace/internal/modules/exhibition/dto"
	exhibitionRepo "anoa.com/nftmarketplace/internal/modules/exhibition/repository"
	exhibitionService "anoa.com/nftmarketplace/internal/modules/exhibition/service"

	searchHttp "anoa.com/nftmarketplace/internal/modules/search/delivery/http"
	searchService "anoa.com/nftmarketplace/internal/modules/search/service"

	transactionHttp "anoa.com/nftmarketplace/internal/modules/transaction/delivery/http"
	transactionRepo "anoa.com/nftmarketplace/internal/modules/transaction/repository"
	transactionService "anoa.com/nftmarketplace/internal/modules/transaction/service"

	viewHttp "anoa.com/nftmarketplace/internal/modules/view/delivery/http"
	viewService "anoa.com/nftmarketplace/internal/modules/view/service"

	userHttp "anoa.com/nftmarketplace/internal/modules/user/delivery/http"
	userRepo "anoa.com/nftmarketplace/internal/modules/user/repository"
	userService "anoa.com/nftmarketplace/internal/modules/user/service"

	walletHttp "anoa.com/nftmarketplace/internal/modules/wallet/delivery/http"
	walletRepo "anoa.com/nftmarketplace/internal/modules/wallet/repository"
	walletService "anoa.com/nftmarketplace/internal/modules/wallet/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	cfg         *config.Config
	engine      *gin.Engine
	httpServer  *http.Server
	db          *gorm.DB
	redisClient *redis.Client
}

// NewServer wires every module. redisClient may be nil; caching and rate limiting are skipped then.
func NewServer(ctx context.Context, cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if err := validator.Setup(exhibitionDto.Validations); err != nil {
		return nil, err
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := session.NewManager(cfg.JWTSecret, cfg.SessionTTL, cfg.SessionCookie, cfg.SecureCookie)

	var imageStorage storage.ImageStorage
	if cfg.Cloudinary.Enabled() {
		s, err := storage.NewCloudinaryStorage(cfg.Cloudinary)
		if err != nil {
			return nil, err
		}
		imageStorage = s
	} else {
		logger.Warn("cloudinary not configured, cover uploads disabled")
	}

	var meiliSvc searchService.MeiliSearchService
	if cfg.MeiliSearchHost != "" {
		meiliClient := meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		meiliSvc = searchService.NewMeiliSearchService(meiliClient)
	} else {
		logger.Warn("meilisearch not configured, exhibition indexing disabled")
	}

	statsCache := cache.NewJSONCache(redisClient, "stats", cfg.StatsCacheTTL)

	userRepository := userRepo.NewUserRepository(db)

	walletRepository := walletRepo.NewWalletRepository(db)
	walletSvc := walletService.NewWalletService(walletRepository, cfg.WalletMasterSeed)
	walletHandler := walletHttp.NewWalletHandler(walletSvc)

	exhibitionRepository := exhibitionRepo.NewExhibitionRepository(db)
	exhibitionSvc := exhibitionService.NewExhibitionService(exhibitionRepository, imageStorage, meiliSvc)
	exhibitionHandler := exhibitionHttp.NewExhibitionHandler(exhibitionSvc)

	viewSvc := viewService.NewViewService(redisClient, exhibitionRepository)
	viewHandler := viewHttp.NewViewHandler(viewSvc)
	if redisClient != nil {
		go viewSvc.StartViewSyncWorker(ctx, time.Minute)
	}

	authSvc := userService.NewAuthService(userRepository, sessions, redisClient, cfg.LoginRateLimit)
	authHandler := userHttp.NewAuthHandler(authSvc, sessions)

	userSvc := userService.NewUserService(userRepository, walletSvc, exhibitionRepository)
	userHandler := userHttp.NewUserHandler(userSvc)

	auctionSvc := auctionService.NewAuctionService(auctionRepo.NewAuctionRepository(db), statsCache)
	auctionHandler := auctionHttp.NewAuctionHandler(auctionSvc)

	transactionSvc := transactionService.NewTransactionService(transactionRepo.NewTransactionRepository(db), statsCache)
	transactionHandler := transactionHttp.NewTransactionHandler(transactionSvc)

	analyticsHandler := analyticsHttp.NewAnalyticsHandler(analyticsService.NewAnalyticsService())
	dashboardHandler := dashboardHttp.NewDashboardHandler(dashboardService.NewDashboardService())
	catalogHandler := catalogHttp.NewCatalogHandler()

	if err := bootstrap.SeedWalletPool(ctx, walletSvc, cfg.InitialWalletPool); err != nil {
		return nil, err
	}

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger("/health"))
	router.Use(middleware.RouteGuard(sessions))

	authMiddleware := middleware.NewAuthMiddleware(userRepository, sessions)

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	api.GET("/catalog", catalogHandler.GetCatalog)
	api.GET("/catalog/categories", catalogHandler.GetCategories)
	api.GET("/dashboard/quick-actions", dashboardHandler.GetQuickActions)
	api.GET("/exhibitions/public", exhibitionHandler.GetPublicExhibitions)
	api.POST("/exhibitions/:id/view", authMiddleware.OptionalAuth(), viewHandler.RecordView)
	api.GET("/transactions/stats", transactionHandler.GetStats)
	api.GET("/auctions", auctionHandler.GetAuctions)

	if meiliSvc != nil {
		searchHandler := searchHttp.NewSearchHandler(meiliSvc, cfg.MeiliSearchHost)
		api.GET("/search/token", searchHandler.GetSearchToken)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.GET("/wallets", walletHandler.GetWallets)
			adminGroup.POST("/wallets/initialize", walletHandler.InitializeWallets)
		}

		protected.GET("/auctions/stats", auctionHandler.GetStats)

		protected.GET("/exhibitions/stats", exhibitionHandler.GetStats)
		protected.POST("/exhibitions", exhibitionHandler.CreateExhibition)

		protected.GET("/transactions", transactionHandler.GetUserTransactions)

		protected.GET("/user/wallet", userHandler.GetWallet)
		protected.POST("/user/wallet", userHandler.AssignWallet)
		protected.GET("/user/exhibition-participations", userHandler.GetExhibitionParticipations)
		protected.GET("/deposit/address", userHandler.GetDepositAddress)

		protected.GET("/analytics/visitors", analyticsHandler.GetVisitors)
	}

	return &Server{
		cfg:         cfg,
		engine:      router,
		db:          db,
		redisClient: redisClient,
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run blocks until the listener fails or ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func setupCORS(router *gin.Engine, origins []string) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
