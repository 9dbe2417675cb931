package router

import (
	"github.com/germannapsix/Json-translate-app/controllers"
	"github.com/germannapsix/Json-translate-app/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(middlewares.GinLogger(), middlewares.GinRecovery())
	mountSwagger(r)

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	// Pages (public)
	r.GET("/", func(c *gin.Context) { c.HTML(200, "index.html", nil) })
	r.GET("/auth/login", func(c *gin.Context) { c.HTML(200, "login.html", nil) })
	r.GET("/auth/register", func(c *gin.Context) { c.HTML(200, "register.html", nil) })

	auth := r.Group("/api/auth")
	auth.POST("/login", controllers.Login)
	auth.POST("/register", controllers.Register)
	auth.POST("/logout", middlewares.OptionalAuth(), controllers.Logout)

	// Translation API. Public, but runs get attributed to the logged-in
	// user when a valid token is present.
	api := r.Group("/api", middlewares.OptionalAuth())
	{
		api.POST("/translate", controllers.TranslateJSON)
		api.GET("/translations", controllers.GetTranslations)
		api.GET("/translations/:id/stats", controllers.GetTranslationStats)
		api.GET("/languages", controllers.GetSupportedLanguages)
	}

	// Cosmetic live progress for the UI.
	r.GET("/ws/progress", controllers.TranslateProgressWS)

	return r
}
