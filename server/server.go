package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/db"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/handlers"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/helpers"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/logger"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/middleware"
)

// Handler Definitions
var (
	computationHandler *handlers.ComputationHandler
	formHandler        *handlers.FormHandler
	ratesHandler       *handlers.RatesHandler

	// Database
	dbQueries *db.Queries

	commonServices *handlers.CommonServices
)

// InitializeHandlers loads configuration, connects the database pool
// and builds the service and handler graph. It must run before
// InitializeRoutes.
func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}

	dbQueries = db.New(dbpool)

	commonServices = handlers.NewCommonServicesWithPool(dbQueries, dbpool)

	computationHandler = handlers.NewComputationHandler(
		commonServices,
		commonServices.ComputationService,
		commonServices.LinkerService,
		commonServices.WealthService,
	)
	formHandler = handlers.NewFormHandler(commonServices, commonServices.FormService)
	ratesHandler = handlers.NewRatesHandler(commonServices, commonServices.RateService)
}

// InitializeRoutes wires middleware and the API route tree onto the
// given engine.
func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	// One structured log line per request; bodies are never logged
	router.Use(middleware.RequestLoggingMiddleware())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		computation := v1.Group("/tax-computation")
		{
			computation.GET("/:taxYear", computationHandler.ComputeTax)
			computation.GET("/:taxYear/summary", computationHandler.ComputeTaxSummary)
			computation.GET("/:taxYear/income-data", computationHandler.IncomeData)
			computation.GET("/:taxYear/adjustable-data", computationHandler.AdjustableData)
			computation.POST("/:taxYear/update-links", computationHandler.UpdateLinks)
		}

		v1.GET("/wealth-reconciliation/:taxYear", computationHandler.WealthReconciliation)

		forms := v1.Group("/forms")
		{
			forms.GET("/:taxYear", formHandler.GetFormBundle)
			forms.GET("/:taxYear/income", formHandler.GetIncomeForm)
			forms.PUT("/:taxYear/income", formHandler.SaveIncomeForm)
			forms.GET("/:taxYear/adjustable-tax", formHandler.GetAdjustableTaxForm)
			forms.PUT("/:taxYear/adjustable-tax", formHandler.SaveAdjustableTaxForm)
			forms.GET("/:taxYear/capital-gain", formHandler.GetCapitalGainForm)
			forms.PUT("/:taxYear/capital-gain", formHandler.SaveCapitalGainForm)
			forms.GET("/:taxYear/reductions", formHandler.GetReductionsForm)
			forms.PUT("/:taxYear/reductions", formHandler.SaveReductionsForm)
			forms.GET("/:taxYear/credits", formHandler.GetCreditsForm)
			forms.PUT("/:taxYear/credits", formHandler.SaveCreditsForm)
			forms.GET("/:taxYear/deductions", formHandler.GetDeductionsForm)
			forms.PUT("/:taxYear/deductions", formHandler.SaveDeductionsForm)
			forms.GET("/:taxYear/final-tax", formHandler.GetFinalTaxForm)
			forms.PUT("/:taxYear/final-tax", formHandler.SaveFinalTaxForm)
			forms.GET("/:taxYear/wealth-statement", formHandler.GetWealthStatement)
			forms.PUT("/:taxYear/wealth-statement", formHandler.SaveWealthStatement)
		}

		rates := v1.Group("/rates")
		{
			rates.GET("/:taxYear", ratesHandler.GetRateTable)
			rates.PATCH("/:taxYear", ratesHandler.UpdateRate)
		}
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"}
	corsConfig.ExposeHeaders = []string{"X-Correlation-ID"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
