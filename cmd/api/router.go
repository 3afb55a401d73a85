package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"artisthub-backend/internal/shared/middleware"
	"artisthub-backend/pkg/container"
	"artisthub-backend/pkg/metrics"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.AllowedOrigins),
		middleware.Metrics(),
		middleware.ErrorHandler(),
	)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		auth := middleware.AuthMiddleware(c.JWTManager)

		setupAuthRoutes(v1, c, auth)
		setupUserRoutes(v1, c, auth)
		setupTagRoutes(v1, c, auth)
		setupProfileRoutes(v1, c, auth)
		setupPostRoutes(v1, c, auth)
		setupFollowingRoutes(v1, c, auth)
		setupPortfolioRoutes(v1, c, auth)
		setupRoleInfoRoutes(v1, c, auth)
		setupCommissionRoutes(v1, c, auth)
		setupPaymentRoutes(v1, c, auth)
		setupWebhookRoutes(v1, c)
		setupUploadRoutes(v1, c, auth)
	}

	return router
}

// ========================================
// AUTH + USER ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	group := v1.Group("/auth")
	{
		group.POST("/register", c.UserHandler.Register)
		group.POST("/login", c.UserHandler.Login)
		group.GET("/me", auth, c.UserHandler.Me)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	users := v1.Group("/users")
	{
		users.GET("", c.UserHandler.List)
		users.GET("/:id", c.UserHandler.GetByID)
		users.GET("/:id/profile", c.ProfileHandler.GetByUser)
		users.GET("/:id/artist-info", c.RoleInfoHandler.GetArtistInfoByUser)
		users.PUT("/:id", auth, c.UserHandler.Update)
		users.DELETE("/:id", auth, c.UserHandler.Delete)
	}
}

// ========================================
// SOCIAL ROUTES
// ========================================
func setupTagRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	tags := v1.Group("/tags")
	{
		tags.GET("", c.TagHandler.List)
		tags.GET("/:id", c.TagHandler.GetByID)
		tags.POST("", auth, c.TagHandler.Create)
		tags.DELETE("/:id", auth, c.TagHandler.Delete)
	}
}

func setupProfileRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	profiles := v1.Group("/profiles")
	{
		profiles.GET("", c.ProfileHandler.List)
		profiles.GET("/:id", c.ProfileHandler.GetByID)
		profiles.POST("", auth, c.ProfileHandler.Create)
		profiles.PUT("/:id", auth, c.ProfileHandler.Update)
		profiles.DELETE("/:id", auth, c.ProfileHandler.Delete)
	}
}

func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	h := c.PostHandler

	posts := v1.Group("/posts")
	{
		posts.GET("", h.ListPosts)
		posts.GET("/:id", h.GetPost)
		posts.POST("", auth, h.CreatePost)
		posts.PUT("/:id", auth, h.UpdatePost)
		posts.DELETE("/:id", auth, h.DeletePost)

		posts.GET("/:id/comments", h.ListComments)
		posts.POST("/:id/comments", auth, h.CreateComment)

		posts.GET("/:id/likes", h.ListLikes)
		posts.POST("/:id/likes", auth, h.Like)
	}

	comments := v1.Group("/comments")
	{
		comments.GET("/:id", h.GetComment)
		comments.PUT("/:id", auth, h.UpdateComment)
		comments.DELETE("/:id", auth, h.DeleteComment)
	}

	likes := v1.Group("/likes")
	{
		likes.GET("/:id", h.GetLike)
		likes.DELETE("/:id", auth, h.Unlike)
	}
}

func setupFollowingRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	followings := v1.Group("/followings")
	{
		followings.GET("", c.FollowingHandler.List)
		followings.GET("/:id", c.FollowingHandler.GetByID)
		followings.POST("", auth, c.FollowingHandler.Create)
		followings.DELETE("/:id", auth, c.FollowingHandler.Delete)
	}
}

// ========================================
// PROFESSIONAL ROUTES
// ========================================
func setupPortfolioRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	h := c.PortfolioHandler

	portfolios := v1.Group("/portfolios")
	{
		portfolios.GET("", h.List)
		portfolios.GET("/:id", h.GetByID)
		portfolios.POST("", auth, h.Create)
		portfolios.PUT("/:id", auth, h.Update)
		portfolios.DELETE("/:id", auth, h.Delete)

		portfolios.GET("/:id/items", h.ListItems)
		portfolios.POST("/:id/items", auth, h.CreateItem)
	}

	items := v1.Group("/portfolio-items")
	{
		items.GET("/:id", h.GetItem)
		items.PUT("/:id", auth, h.UpdateItem)
		items.DELETE("/:id", auth, h.DeleteItem)
	}
}

func setupRoleInfoRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	h := c.RoleInfoHandler

	artists := v1.Group("/artist-infos")
	{
		artists.GET("", h.ListArtistInfos)
		artists.GET("/:id", h.GetArtistInfo)
		artists.POST("", auth, h.CreateArtistInfo)
		artists.PUT("/:id", auth, h.UpdateArtistInfo)
		artists.DELETE("/:id", auth, h.DeleteArtistInfo)
	}

	recruiters := v1.Group("/recruiter-infos")
	{
		recruiters.GET("", h.ListRecruiterInfos)
		recruiters.GET("/:id", h.GetRecruiterInfo)
		recruiters.POST("", auth, h.CreateRecruiterInfo)
		recruiters.PUT("/:id", auth, h.UpdateRecruiterInfo)
		recruiters.DELETE("/:id", auth, h.DeleteRecruiterInfo)
	}
}

// ========================================
// COMMISSION + PAYMENT ROUTES
// ========================================
func setupCommissionRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	h := c.CommissionHandler

	commissions := v1.Group("/commissions", auth)
	{
		commissions.POST("", h.Create)
		commissions.GET("", h.List)
		commissions.GET("/:id", h.GetByID)
		commissions.PUT("/:id", h.Update)
		commissions.DELETE("/:id", h.Delete)

		commissions.GET("/:id/transitions", h.Transitions)
		commissions.POST("/:id/price", h.SetPrice)
		commissions.POST("/:id/accept", h.Accept)
		commissions.POST("/:id/deny", h.Deny)
		commissions.POST("/:id/checkout", h.Checkout)
		commissions.POST("/:id/complete", h.Complete)

		commissions.GET("/:id/payments", c.PaymentHandler.ListByCommission)
	}
}

func setupPaymentRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	payments := v1.Group("/payments", auth)
	{
		payments.POST("/accounts", c.PaymentHandler.CreateAccount)
	}
}

// Webhook: không auth, chữ ký được verify trong service
func setupWebhookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/webhooks/payments", c.PaymentHandler.Webhook)
}

func setupUploadRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	if c.UploadHandler == nil {
		return
	}
	uploads := v1.Group("/uploads", auth)
	{
		uploads.POST("/images", c.UploadHandler.UploadImage)
		uploads.DELETE("/images/:id", c.UploadHandler.DeleteImage)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		// Check database
		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}
		if stats, err := appCtx.DB.Stats(); err == nil {
			health["pool"] = stats
		}

		// Check redis
		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			redisStatus = fmt.Sprintf("error: %v", err)
		}

		storageStatus := "ok"
		if appCtx.ObjectStore == nil {
			storageStatus = "disabled"
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
			"storage":  storageStatus,
			"payments": appCtx.Gateway.Name(),
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
