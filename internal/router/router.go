// Package router assembles the gin engine: middleware, CORS, swagger and
// every /api route.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"targetrack/internal/config"
	_ "targetrack/internal/docs" // Import swagger docs
	"targetrack/internal/handlers"
	"targetrack/internal/middleware"
	"targetrack/internal/services"
)

// New builds the HTTP handler for the API backed by db.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	employeeService := services.NewEmployeeService(db)
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	targetService := services.NewTargetService(db)
	achievementService := services.NewAchievementService(db)
	analyticsService := services.NewAnalyticsService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	employeeHandler := handlers.NewEmployeeHandler(employeeService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	productHandler := handlers.NewProductHandler(productService, auditService)
	targetHandler := handlers.NewTargetHandler(targetService, auditService)
	achievementHandler := handlers.NewAchievementHandler(achievementService, auditService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(cfg)))
	router.NoRoute(middleware.NotFound)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	employees := api.Group("/employees")
	employees.POST("", employeeHandler.CreateEmployee)
	employees.GET("", employeeHandler.GetEmployees)
	employees.GET("/view", employeeHandler.ViewEmployees)
	employees.GET("/:id", employeeHandler.GetEmployeeByID)
	employees.PUT("/:id", employeeHandler.UpdateEmployee)
	employees.DELETE("/:id", employeeHandler.DeleteEmployee)

	targets := api.Group("/targets")
	targets.POST("", targetHandler.CreateTarget)
	targets.GET("", targetHandler.GetTargets)
	targets.GET("/view", targetHandler.ViewTargets)
	targets.GET("/employee/:id", targetHandler.GetTargetsByEmployee)
	targets.GET("/:id", targetHandler.GetTargetByID)
	targets.PUT("/:id", targetHandler.UpdateTarget)
	targets.PUT("/:id/combined", targetHandler.SaveTargetWithAchievement)
	targets.DELETE("/:id", targetHandler.DeleteTarget)

	achievements := api.Group("/achievements")
	achievements.POST("", achievementHandler.CreateAchievement)
	achievements.GET("", achievementHandler.GetAchievements)
	achievements.GET("/view", achievementHandler.ViewAchievements)
	achievements.PUT("/:targetId", achievementHandler.UpdateAchievement)
	achievements.DELETE("/:targetId", achievementHandler.DeleteAchievement)

	categories := api.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PATCH("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	products := api.Group("/products")
	products.POST("", productHandler.CreateProduct)
	products.GET("", productHandler.GetProducts)
	products.GET("/:id", productHandler.GetProductByID)
	products.PATCH("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)

	analytics := api.Group("/analytics")
	analytics.GET("/years", analyticsHandler.GetYears)
	analytics.GET("/summary/monthly", analyticsHandler.GetMonthlySummary)
	analytics.GET("/summary/monthly-by-category", analyticsHandler.GetMonthlySummaryByCategory)
	analytics.GET("/products/targets", analyticsHandler.GetProductTargets)
	analytics.GET("/employee/:id/performance", analyticsHandler.GetEmployeePerformance)
	analytics.GET("/employees/top-achievers", analyticsHandler.GetTopAchievers)

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSOrigins
	}
	return c
}
