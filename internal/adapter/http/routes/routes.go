package routes

import (
	"context"
	"fmt"
	"net/http"

	_ "facturador/docs" // This will be auto-generated
	"facturador/internal/adapter/http/handlers"
	"facturador/internal/adapter/persistence/repository"
	"facturador/internal/adapter/persistence/store"
	"facturador/internal/config"
	"facturador/internal/infrastructure/database"
	"facturador/internal/logger"
	"facturador/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes(cfg *config.Config) {
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create dynamodb client")
	}

	kv := repository.NewKeyValueDynamoRepository(ddb)
	invoiceStore, err := store.NewInvoiceStore(ctx, kv)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load invoice store")
	}

	if cfg.SeedOnStart {
		if err := invoiceStore.Seed(ctx, usecase.SeedInvoices()); err != nil {
			log.Fatal().Err(err).Msg("failed to seed invoice store")
		}
	}

	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceStore)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	exportHandler := handlers.NewExportHandler(invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInvoicingRoutes(v1, invoiceHandler, exportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
