package routes

import (
	"net/http"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/config"
	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/controllers"
	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/middlewares"
	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg config.Config, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(logger), gin.Recovery())

	// Same-origin only unless the browser UI is served from elsewhere.
	if cfg.EnableCORS {
		r.Use(cors.Default())
	}

	pantryCtl := controllers.NewPantryController(services.NewPantryService(db))
	logCtl := controllers.NewLogController(services.NewLogService(db))
	macrosCtl := controllers.NewMacrosController(
		services.NewTargetService(db),
		services.NewSummaryService(db),
	)
	adminCtl := controllers.NewAdminController(services.NewAdminService(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		pantry := api.Group("/pantry")
		{
			pantry.GET("", pantryCtl.List)
			pantry.POST("", pantryCtl.Create)
			pantry.GET("/:id", pantryCtl.Get)
			pantry.PUT("/:id", pantryCtl.Update)
			pantry.DELETE("/:id", pantryCtl.Delete)
		}

		logs := api.Group("/logs")
		{
			logs.GET("", logCtl.List)
			logs.POST("", logCtl.Create)
			logs.PUT("/:id", logCtl.Update)
			logs.DELETE("/:id", logCtl.Delete)
		}

		api.POST("/consume", logCtl.Consume)

		macros := api.Group("/macros")
		{
			macros.GET("/targets", macrosCtl.GetTargets)
			macros.PUT("/targets", macrosCtl.SetTargets)
			macros.GET("/summary", macrosCtl.GetSummary)
		}

		api.POST("/reset", adminCtl.Reset)
	}

	return r
}
