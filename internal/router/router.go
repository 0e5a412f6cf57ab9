package router

import (
	"github.com/gin-gonic/gin"

	"github.com/navjivan/navjivan-backend/config"
	"github.com/navjivan/navjivan-backend/internal/app/controller"
	"github.com/navjivan/navjivan-backend/internal/middleware"
)

type Router struct {
	authController           *controller.AuthController
	publicController         *controller.PublicController
	adminController          *controller.AdminController
	uploadController         *controller.UploadController
	recommendationController *controller.RecommendationController
	realtimeController       *controller.RealtimeController
	authMiddleware           *middleware.AuthMiddleware
	config                   *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	publicController *controller.PublicController,
	adminController *controller.AdminController,
	uploadController *controller.UploadController,
	recommendationController *controller.RecommendationController,
	realtimeController *controller.RealtimeController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:           authController,
		publicController:         publicController,
		adminController:          adminController,
		uploadController:         uploadController,
		recommendationController: recommendationController,
		realtimeController:       realtimeController,
		authMiddleware:           authMiddleware,
		config:                   cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "NAVJIVAN API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
		}

		// Public site endpoints, served from the content mirror
		content := v1.Group("/content")
		{
			content.GET("/menu", r.publicController.GetMenu)
			content.GET("/offers", r.publicController.GetOffers)
			content.GET("/reviews", r.publicController.GetReviews)
			content.GET("/gallery", r.publicController.GetGallery)
			content.GET("/chefs", r.publicController.GetChefs)
			content.GET("/faqs", r.publicController.GetFAQs)
			content.GET("/contact-info", r.publicController.GetContactInfo)
			content.GET("/about-info", r.publicController.GetAboutInfo)
		}

		// Guest submissions
		v1.POST("/reservations", r.publicController.CreateReservation)
		v1.POST("/reviews", r.publicController.CreateReview)
		v1.POST("/contact", r.publicController.CreateContactMessage)
		v1.POST("/recommendations", r.recommendationController.Recommend)

		// Admin console
		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.Authenticate())
		admin.Use(r.authMiddleware.RequireRole("admin"))
		{
			admin.GET("/menu/items", r.adminController.ListMenuItems)
			admin.POST("/menu/items", r.adminController.CreateMenuItem)
			admin.PUT("/menu/items/:id", r.adminController.UpdateMenuItem)
			admin.DELETE("/menu/items/:id", r.adminController.DeleteMenuItem)

			admin.GET("/menu/categories", r.adminController.ListMenuCategories)
			admin.POST("/menu/categories", r.adminController.CreateMenuCategory)
			admin.DELETE("/menu/categories/:name", r.adminController.DeleteMenuCategory)

			admin.GET("/offers", r.adminController.ListOffers)
			admin.POST("/offers", r.adminController.CreateOffer)
			admin.PUT("/offers/:id", r.adminController.UpdateOffer)
			admin.DELETE("/offers/:id", r.adminController.DeleteOffer)

			admin.GET("/reviews", r.adminController.ListReviews)
			admin.PUT("/reviews/:id", r.adminController.UpdateReview)
			admin.DELETE("/reviews/:id", r.adminController.DeleteReview)

			admin.GET("/gallery", r.adminController.ListGallery)
			admin.POST("/gallery", r.adminController.CreateGalleryImage)
			admin.DELETE("/gallery/:id", r.adminController.DeleteGalleryImage)

			admin.GET("/chefs", r.adminController.ListChefs)
			admin.POST("/chefs", r.adminController.CreateChef)
			admin.PUT("/chefs/:id", r.adminController.UpdateChef)
			admin.DELETE("/chefs/:id", r.adminController.DeleteChef)
			admin.PUT("/chef-special", r.adminController.UpdateChefSpecial)

			admin.PUT("/faqs", r.adminController.ReplaceFAQs)

			admin.PUT("/contact-info", r.adminController.UpdateContactInfo)
			admin.PUT("/about-info", r.adminController.UpdateAboutInfo)

			admin.GET("/reservations", r.adminController.ListReservations)
			admin.PUT("/reservations/:id", r.adminController.UpdateReservation)
			admin.DELETE("/reservations/:id", r.adminController.DeleteReservation)
			admin.GET("/reservations/export", r.adminController.ExportReservations)

			admin.POST("/upload/image", r.uploadController.UploadImage)
			admin.DELETE("/upload/image", r.uploadController.DeleteImage)
			admin.POST("/upload/presigned-url", r.uploadController.GetPresignedURL)

			admin.GET("/ws", r.realtimeController.ServeWS)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
