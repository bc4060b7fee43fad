package routes

import (
	"gallery-app/internal/api/artists"
	"gallery-app/internal/api/artworks"
	authapi "gallery-app/internal/api/auth"
	"gallery-app/internal/api/exhibitions"
	"gallery-app/internal/api/profile"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "service": "rang-manch-backend"})
	})

	api := r.Group("/api")

	// Public reads
	api.GET("/artworks", artworks.ListArtworks)
	api.GET("/artworks/:id", artworks.GetArtwork)
	api.GET("/artworks/:id/comments", artworks.ListComments)
	api.GET("/exhibitions", exhibitions.ListExhibitions)
	api.GET("/artists", artists.ListArtists)
	api.GET("/artists/:id", artists.GetArtist)

	// Public writes go through input sanitization
	public := api.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())
	public.POST("/auth/register", authapi.Register)
	public.POST("/auth/login", authapi.Login)

	// Authenticated, any role
	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/artworks/:id/comments", artworks.CreateComment)
	auth.DELETE("/artworks/:id/comments/:commentId", artworks.DeleteComment)
	auth.GET("/profile", profile.GetProfile)
	auth.PUT("/profile", profile.UpdateProfile)

	// Artist-only
	artist := auth.Group("/")
	artist.Use(middleware.RequireRole(users.RoleArtist))
	artist.POST("/artworks", artworks.CreateArtwork)
	artist.PUT("/artworks/:id", artworks.UpdateArtwork)
	artist.DELETE("/artworks/:id", artworks.DeleteArtwork)
	artist.POST("/exhibitions", exhibitions.CreateExhibition)
}
