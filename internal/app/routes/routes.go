package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/envisys/internal/app/controllers"
	"github.com/yigit/envisys/internal/middleware"
)

// Controllers groups the handlers mounted under /api/v1
type Controllers struct {
	Session    *controllers.SessionController
	Navigation *controllers.NavigationController
	View       *controllers.ViewController
	Action     *controllers.ActionController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public session routes ---
	session := v1.Group("/session")
	{
		session.POST("/login", ctrl.Session.Login)
		session.GET("", authMiddleware.SessionOptional(), ctrl.Session.GetSession)
		session.POST("/logout", authMiddleware.SessionRequired(), ctrl.Session.Logout)
	}

	// Signed-out callers get the login view
	v1.GET("/view", authMiddleware.SessionOptional(), ctrl.View.GetView)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionRequired())
	{
		nav := authenticated.Group("/navigation")
		{
			nav.POST("/navigate", ctrl.Navigation.Navigate)
			nav.POST("/theses/:id", ctrl.Navigation.ViewThesis)
			nav.POST("/groups/:id", ctrl.Navigation.ViewGroup)
			nav.POST("/back", ctrl.Navigation.Back)
		}

		authenticated.GET("/capabilities", ctrl.Action.GetCapabilities)
		authenticated.POST("/actions/:action", ctrl.Action.PerformAction)
	}
}
