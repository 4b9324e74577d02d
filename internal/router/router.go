package router

import (
	"fintrack/internal/config"
	"fintrack/internal/handler"
	"fintrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret

	// auth endpoints (no token required)
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// everything below requires a valid session
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret, db))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/me", handler.GetMe)

	categoryHandler := handler.NewCategoryHandler(db)
	protected.POST("/categories", categoryHandler.CreateCategory)
	protected.GET("/categories", categoryHandler.ListCategories)
	protected.PUT("/categories/:id", categoryHandler.UpdateCategory)
	protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	transactionHandler := handler.NewTransactionHandler(db)
	protected.POST("/transactions", transactionHandler.CreateTransaction)
	protected.GET("/transactions", transactionHandler.ListTransactions)
	protected.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	protected.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	assetTypeHandler := handler.NewAssetTypeHandler(db)
	protected.POST("/asset-types", assetTypeHandler.CreateAssetType)
	protected.GET("/asset-types", assetTypeHandler.ListAssetTypes)
	protected.PUT("/asset-types/:id", assetTypeHandler.UpdateAssetType)
	protected.DELETE("/asset-types/:id", assetTypeHandler.DeleteAssetType)

	assetHandler := handler.NewAssetHandler(db)
	protected.POST("/assets", assetHandler.CreateAsset)
	protected.GET("/assets", assetHandler.ListAssets)
	protected.PUT("/assets/:id", assetHandler.UpdateAsset)
	protected.DELETE("/assets/:id", assetHandler.DeleteAsset)

	settingHandler := handler.NewSettingHandler(db)
	protected.GET("/settings", settingHandler.GetSettings)
	protected.PUT("/settings", settingHandler.UpdateSettings)

	reportHandler := handler.NewReportHandler(db)
	protected.GET("/reports/statistics", reportHandler.GetStatistics)
	protected.GET("/reports/overall", reportHandler.GetOverall)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
