package routes

import (
	authapi "lafaek-backend/internal/api/auth"
	contactapi "lafaek-backend/internal/api/contact"
	contentapi "lafaek-backend/internal/api/content"
	"lafaek-backend/internal/api/uploads"
	"lafaek-backend/internal/api/widgets"
	"lafaek-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public, sanitized
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.GET("/content/:collection", contentapi.ListPublic)
	public.POST("/contact", contactapi.Submit)
	public.POST("/widgets/privacy-score", widgets.PrivacyScore)
	public.POST("/widgets/terminal", widgets.Terminal)
	public.POST("/auth/login", authapi.Login)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/auth/change-password", authapi.ChangePassword)

	// Admin content surface
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/content/:collection", contentapi.ListAdmin)
	admin.PUT("/content/:collection", contentapi.SaveCollection)
	admin.POST("/uploads/presign", uploads.Presign)
	admin.GET("/contact", contactapi.ListMessages)
}
