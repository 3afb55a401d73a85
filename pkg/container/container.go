package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/config"
	infraCache "artisthub-backend/internal/infrastructure/cache"
	"artisthub-backend/internal/infrastructure/database"
	"artisthub-backend/internal/infrastructure/email"
	"artisthub-backend/internal/infrastructure/queue"
	"artisthub-backend/internal/infrastructure/storage"
	"artisthub-backend/pkg/cache"
	pkgdb "artisthub-backend/pkg/database"
	"artisthub-backend/pkg/jwt"

	userHandler "artisthub-backend/internal/domains/user/handler"
	userRepo "artisthub-backend/internal/domains/user/repository"
	userService "artisthub-backend/internal/domains/user/service"

	tagHandler "artisthub-backend/internal/domains/tag/handler"
	tagRepo "artisthub-backend/internal/domains/tag/repository"
	tagService "artisthub-backend/internal/domains/tag/service"

	profileHandler "artisthub-backend/internal/domains/profile/handler"
	profileRepo "artisthub-backend/internal/domains/profile/repository"
	profileService "artisthub-backend/internal/domains/profile/service"

	postHandler "artisthub-backend/internal/domains/post/handler"
	postRepo "artisthub-backend/internal/domains/post/repository"
	postService "artisthub-backend/internal/domains/post/service"

	followingHandler "artisthub-backend/internal/domains/following/handler"
	followingRepo "artisthub-backend/internal/domains/following/repository"
	followingService "artisthub-backend/internal/domains/following/service"

	portfolioHandler "artisthub-backend/internal/domains/portfolio/handler"
	portfolioRepo "artisthub-backend/internal/domains/portfolio/repository"
	portfolioService "artisthub-backend/internal/domains/portfolio/service"

	roleinfoHandler "artisthub-backend/internal/domains/roleinfo/handler"
	roleinfoRepo "artisthub-backend/internal/domains/roleinfo/repository"
	roleinfoService "artisthub-backend/internal/domains/roleinfo/service"

	commissionHandler "artisthub-backend/internal/domains/commission/handler"
	commissionRepo "artisthub-backend/internal/domains/commission/repository"
	commissionService "artisthub-backend/internal/domains/commission/service"

	"artisthub-backend/internal/domains/payment/gateway"
	mockGateway "artisthub-backend/internal/domains/payment/gateway/mock"
	"artisthub-backend/internal/domains/payment/gateway/stripe"
	paymentHandler "artisthub-backend/internal/domains/payment/handler"
	paymentRepo "artisthub-backend/internal/domains/payment/repository"
	paymentService "artisthub-backend/internal/domains/payment/service"

	uploadHandler "artisthub-backend/internal/domains/upload/handler"
	uploadService "artisthub-backend/internal/domains/upload/service"
)

// maxUploadSize giới hạn file ảnh ở handler, trước khi đọc vào memory
const maxUploadSize = 10 << 20

// ========================================
// CONTAINER STRUCT
// ========================================

// Container giữ toàn bộ dependency graph của app (api và worker dùng chung)
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	TxManager   pkgdb.TxManager
	AsynqClient *asynq.Client
	Gateway     gateway.Gateway
	ObjectStore storage.ObjectStore // nil khi MinIO không kết nối được
	Mailer      *email.CommissionMailer

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	UserRepo          userRepo.UserRepository
	TagRepo           tagRepo.TagRepository
	ProfileRepo       profileRepo.ProfileRepository
	PostRepo          postRepo.PostRepository
	CommentRepo       postRepo.CommentRepository
	LikeRepo          postRepo.LikeRepository
	FollowingRepo     followingRepo.FollowingRepository
	PortfolioRepo     portfolioRepo.PortfolioRepository
	PortfolioItemRepo portfolioRepo.ItemRepository
	ArtistInfoRepo    roleinfoRepo.ArtistInfoRepository
	RecruiterInfoRepo roleinfoRepo.RecruiterInfoRepository
	CommissionRepo    commissionRepo.CommissionRepository
	PaymentRepo       paymentRepo.PaymentRepository

	// ========================================
	// SERVICE LAYER
	// ========================================
	UserService          userService.UserService
	TagService           tagService.TagService
	ProfileService       profileService.ProfileService
	PostService          postService.PostService
	CommentService       postService.CommentService
	LikeService          postService.LikeService
	FollowingService     followingService.FollowingService
	PortfolioService     portfolioService.PortfolioService
	PortfolioItemService portfolioService.ItemService
	ArtistInfoService    roleinfoService.ArtistInfoService
	RecruiterInfoService roleinfoService.RecruiterInfoService
	CommissionService    commissionService.CommissionService
	PaymentService       paymentService.PaymentService
	WebhookService       paymentService.WebhookService
	UploadService        uploadService.UploadService

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	UserHandler       *userHandler.UserHandler
	TagHandler        *tagHandler.TagHandler
	ProfileHandler    *profileHandler.ProfileHandler
	PostHandler       *postHandler.PostHandler
	FollowingHandler  *followingHandler.FollowingHandler
	PortfolioHandler  *portfolioHandler.PortfolioHandler
	RoleInfoHandler   *roleinfoHandler.RoleInfoHandler
	CommissionHandler *commissionHandler.CommissionHandler
	PaymentHandler    *paymentHandler.PaymentHandler
	UploadHandler     *uploadHandler.UploadHandler // nil khi không có object store
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer khởi tạo theo thứ tự:
// config -> infrastructure -> repositories -> services -> handlers
func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing DI container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	c.TxManager = pkgdb.NewTxManager(db.Pool)
	log.Info().Msg("Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE + QUEUE
	// ========================================
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		// Redis lỗi không chặn start: cache-aside tự bỏ qua
		log.Warn().Err(err).Msg("Redis connection failed (non-critical)")
	} else {
		log.Info().Msg("Redis connected")
	}
	c.Cache = redisCache

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	c.Mailer = email.NewCommissionMailer(email.NewSMTPEmailService(email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}), cfg.App.PublicURL)

	c.Gateway = newGateway(cfg)
	log.Info().Str("provider", c.Gateway.Name()).Msg("Payment gateway configured")

	store, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	if err != nil {
		log.Warn().Err(err).Msg("MinIO unavailable, image uploads disabled")
	} else {
		c.ObjectStore = store
	}

	// ========================================
	// STEP 4-6: REPOSITORIES -> SERVICES -> HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

func newGateway(cfg *config.Config) gateway.Gateway {
	if cfg.Payment.Provider == "stripe" {
		return stripe.NewClient(&stripe.Config{
			APIKey:           cfg.Payment.APIKey,
			APIURL:           cfg.Payment.APIURL,
			WebhookSecret:    cfg.Payment.WebhookSecret,
			WebhookTolerance: cfg.Payment.WebhookTolerance,
			SuccessURL:       cfg.Payment.SuccessURL,
			CancelURL:        cfg.Payment.CancelURL,
			RefreshURL:       cfg.Payment.RefreshURL,
		})
	}
	return mockGateway.NewGateway(cfg.App.PublicURL + "/mock-payments")
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewUserRepository(pool, c.Cache)
	c.TagRepo = tagRepo.NewTagRepository(pool)
	c.ProfileRepo = profileRepo.NewProfileRepository(pool)
	c.PostRepo = postRepo.NewPostRepository(pool)
	c.CommentRepo = postRepo.NewCommentRepository(pool)
	c.LikeRepo = postRepo.NewLikeRepository(pool)
	c.FollowingRepo = followingRepo.NewFollowingRepository(pool)
	c.PortfolioRepo = portfolioRepo.NewPortfolioRepository(pool)
	c.PortfolioItemRepo = portfolioRepo.NewItemRepository(pool)
	c.ArtistInfoRepo = roleinfoRepo.NewArtistInfoRepository(pool)
	c.RecruiterInfoRepo = roleinfoRepo.NewRecruiterInfoRepository(pool)
	c.CommissionRepo = commissionRepo.NewPostgresCommissionRepository(pool, c.Cache, c.Config.Commission.CacheTTL)
	c.PaymentRepo = paymentRepo.NewPaymentRepository(pool)
}

func (c *Container) initServices() {
	cfg := c.Config

	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, 0)
	c.TagService = tagService.NewTagService(c.TagRepo)
	c.ProfileService = profileService.NewProfileService(c.ProfileRepo, c.TagRepo, c.UserRepo, c.TxManager)
	c.PostService = postService.NewPostService(c.PostRepo, c.UserRepo)
	c.CommentService = postService.NewCommentService(c.CommentRepo, c.PostRepo, c.UserRepo)
	c.LikeService = postService.NewLikeService(c.LikeRepo, c.PostRepo, c.UserRepo, c.TxManager)
	c.FollowingService = followingService.NewFollowingService(c.FollowingRepo, c.UserRepo)
	c.PortfolioService = portfolioService.NewPortfolioService(c.PortfolioRepo, c.UserRepo)
	c.PortfolioItemService = portfolioService.NewItemService(c.PortfolioItemRepo, c.PortfolioRepo)
	c.ArtistInfoService = roleinfoService.NewArtistInfoService(c.ArtistInfoRepo, c.UserRepo)
	c.RecruiterInfoService = roleinfoService.NewRecruiterInfoService(c.RecruiterInfoRepo, c.UserRepo)

	// payment -> commission -> webhook: webhook cần commission service để ConfirmPayment
	c.PaymentService = paymentService.NewPaymentService(
		c.PaymentRepo,
		c.Gateway,
		c.ArtistInfoRepo,
		c.UserRepo,
		paymentService.Config{
			Currency:           cfg.Payment.Currency,
			PlatformFeePercent: cfg.Payment.PlatformFeePercent,
		},
	)

	c.CommissionService = commissionService.NewCommissionService(
		c.CommissionRepo,
		c.UserService,
		c.newNotifier(),
		c.PaymentService,
		commissionService.Config{StrictTransitions: cfg.Commission.StrictTransitions},
	)

	c.WebhookService = paymentService.NewWebhookService(c.Gateway, c.PaymentRepo, c.CommissionService, c.Cache)

	if c.ObjectStore != nil {
		c.UploadService = uploadService.NewUploadService(c.ObjectStore, storage.NewImageProcessor(maxUploadSize))
	}
}

// newNotifier: NOTIFY_MODE=queue đẩy task cho cmd/worker, sync gửi email ngay
func (c *Container) newNotifier() commissionService.Notifier {
	if c.Config.App.NotifyMode == "sync" {
		return email.NewSyncNotifier(c.Mailer)
	}
	return queue.NewAsynqNotifier(c.AsynqClient)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService, c.CommentService, c.LikeService)
	c.FollowingHandler = followingHandler.NewFollowingHandler(c.FollowingService)
	c.PortfolioHandler = portfolioHandler.NewPortfolioHandler(c.PortfolioService, c.PortfolioItemService)
	c.RoleInfoHandler = roleinfoHandler.NewRoleInfoHandler(c.ArtistInfoService, c.RecruiterInfoService)
	c.CommissionHandler = commissionHandler.NewCommissionHandler(c.CommissionService)
	c.PaymentHandler = paymentHandler.NewPaymentHandler(c.PaymentService, c.WebhookService)

	if c.UploadService != nil {
		c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService, maxUploadSize)
	}
}

// Cleanup đóng pool, redis và asynq client khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close asynq client")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		} else {
			log.Info().Msg("Database connections closed")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		} else {
			log.Info().Msg("Redis connections closed")
		}
	}
}
