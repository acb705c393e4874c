package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every route; the same wiring serves the binary and the
// handler test suites.
func NewRouter(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	profileHandler *ProfileHandler,
	postHandler *PostHandler,
	feedHandler *FeedHandler,
	authMiddleware gin.HandlerFunc,
	errorMiddleware gin.HandlerFunc,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		users := api.Group("/users")
		{
			users.POST("", userHandler.Register)
			users.POST("/avatar", authMiddleware, userHandler.UploadAvatar)
		}

		auth := api.Group("/auth")
		{
			auth.POST("", authHandler.Login)
			auth.GET("", authMiddleware, authHandler.CurrentUser)
		}

		profile := api.Group("/profile")
		{
			profile.GET("", profileHandler.List)
			profile.GET("/user/:userId", profileHandler.GetByUser)

			profile.POST("", authMiddleware, profileHandler.Upsert)
			profile.GET("/me", authMiddleware, profileHandler.GetMine)
			profile.DELETE("", authMiddleware, profileHandler.DeleteAccount)
			profile.PATCH("/experience", authMiddleware, profileHandler.AddExperience)
			profile.DELETE("/experience/:id", authMiddleware, profileHandler.RemoveExperience)
			profile.PATCH("/education", authMiddleware, profileHandler.AddEducation)
			profile.DELETE("/education/:id", authMiddleware, profileHandler.RemoveEducation)
		}

		api.GET("/feed", authMiddleware, feedHandler.Recent)

		posts := api.Group("/posts")
		posts.Use(authMiddleware)
		{
			posts.POST("", postHandler.Create)
			posts.GET("", postHandler.List)
			posts.GET("/:id", postHandler.Get)
			posts.DELETE("/:id", postHandler.Delete)
			posts.PATCH("/like/:id", postHandler.Like)
			posts.PATCH("/unlike/:id", postHandler.Unlike)
			posts.PATCH("/comment/:id", postHandler.AddComment)
			posts.DELETE("/comment/:id/:commentId", postHandler.RemoveComment)
		}
	}

	return router
}
