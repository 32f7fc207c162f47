/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/tieubaoca/memobox-be/config"
	"github.com/tieubaoca/memobox-be/handler"
	"github.com/tieubaoca/memobox-be/middleware"
	"github.com/tieubaoca/memobox-be/repository"
	"github.com/tieubaoca/memobox-be/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the local memory server",
	Long:  `Starts the offline document/memory server on the configured port`,
	Run: func(cmd *cobra.Command, args []string) {

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var store repository.RecordStore
		switch cfg.Storage {
		case config.StorageSqlite:
			store, err = repository.NewSqliteRecordStore(cfg.DataDir)
		default:
			store, err = repository.NewFileRecordStore(cfg.DataDir)
		}
		if err != nil {
			log.Fatalf("Failed to open record store: %v", err)
		}

		// Initialize services
		eventService := service.NewEventService()
		fileService := service.NewFileService(cfg.UploadDir)
		documentService := service.NewDocumentService(store, fileService, eventService)
		queryService := service.NewQueryService(store)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		documentHandler := handler.NewDocumentHandler(documentService, queryService)
		uploadHandler := handler.NewUploadHandler(documentService)
		authHandler := handler.NewAuthHandler()

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)
		router.Use(middleware.SessionMiddleware)

		router.GET("/health", func(c *gin.Context) {
			c.String(http.StatusOK, "OK")
		})
		router.GET("/ws", func(c *gin.Context) {
			eventService.HandleEvents(c.Writer, c.Request)
		})

		// Document store routes
		router.POST("/documents", documentHandler.HandleCreate)
		router.POST("/documents/file", uploadHandler.HandleUploadDocument)
		router.POST("/documents/documents", documentHandler.HandleList)
		router.POST("/documents/documents/by-ids", documentHandler.HandleGetByIDs)
		router.GET("/documents/:id", documentHandler.HandleGet)
		router.PATCH("/documents/:id", documentHandler.HandleUpdate)
		router.DELETE("/documents/:id", documentHandler.HandleDelete)

		// Emulated auth/session surface
		authRoutes := router.Group("/api/auth")
		{
			authRoutes.GET("/get-session", authHandler.HandleGetSession)
			authRoutes.POST("/sign-in/email", authHandler.HandleSignIn)
			authRoutes.POST("/sign-out", authHandler.HandleSignOut)
		}

		// Emulated organization/project surface
		router.GET("/organizations", authHandler.HandleListOrganizations)
		router.GET("/organizations/:id", authHandler.HandleGetOrganization)
		router.GET("/projects", authHandler.HandleListProjects)
		router.GET("/connections", authHandler.HandleListConnections)
		router.GET("/settings", authHandler.HandleGetSettings)
		router.GET("/waitlist/status", authHandler.HandleWaitlistStatus)

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
