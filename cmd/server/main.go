package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/terravita/terravita/backend/content-service/internal/api"
	"github.com/terravita/terravita/backend/content-service/internal/catalog"
	"github.com/terravita/terravita/backend/content-service/internal/db"
	"github.com/terravita/terravita/backend/content-service/internal/email"
	"github.com/terravita/terravita/backend/content-service/internal/logging"
	"github.com/terravita/terravita/backend/content-service/internal/storage"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Ensure all log output goes to stdout so App Runner captures it in Application Logs
	log.SetOutput(os.Stdout)

	log.Printf("Content Service starting (GIT_SHA=%s BUILD_TIME=%s)", os.Getenv("GIT_SHA"), os.Getenv("BUILD_TIME"))

	// The catalog comes from Postgres when configured, otherwise from the
	// embedded seed. Either way a catalog that fails its integrity checks
	// aborts startup; serving half a catalog is worse than not serving.
	var database *db.Database
	var data catalog.Data
	if db.Configured() {
		var err error
		database, err = db.NewDatabaseWithRetry(5, 3*time.Second)
		if err != nil {
			log.Fatalf("Database initialization failed: %v", err)
		}
		defer database.Close()

		loadCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		data, err = database.LoadCatalog(loadCtx)
		cancel()
		if err != nil {
			log.Fatalf("Failed to load catalog from database: %v", err)
		}
		log.Printf("Catalog loaded from database")
	} else {
		var err error
		data, err = catalog.LoadSeed()
		if err != nil {
			log.Fatalf("Failed to load embedded catalog seed: %v", err)
		}
		log.Printf("Catalog loaded from embedded seed")
	}

	cat, err := catalog.New(data)
	if err != nil {
		log.Fatalf("Catalog rejected: %v", err)
	}
	log.Printf("Catalog ready: %d products, %d categories, %d posts, %d jobs",
		len(cat.Products()), len(cat.Categories()), len(cat.Posts()), len(cat.Jobs()))

	// AWS clients for the form gateway. Both degrade to disabled when the
	// environment is not set up, leaving the read API fully functional.
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Printf("[WARN] AWS config load failed, form delivery disabled: %v", err)
	}
	mailer := email.NewService(awsCfg)
	if !mailer.Enabled() {
		log.Printf("[WARN] Mail gateway not configured, form submissions will be rejected")
	}
	resumes, err := storage.NewS3Uploader(context.Background())
	if err != nil {
		log.Printf("[WARN] S3 uploader init failed, resumes will not be stored: %v", err)
	}

	handler := api.NewHandler(cat, database, mailer, resumes)

	router := setupRouter(handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := router.Run(":" + port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}

func setupRouter(handler *api.Handler) *gin.Engine {
	// Set Gin mode based on environment
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(logging.JSONLogger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Health and readiness endpoints
	router.GET("/live", func(c *gin.Context) { c.Status(200) })
	router.GET("/ready", handler.Health)
	router.GET("/health", handler.Health)

	v1 := router.Group("/api/v1")
	{
		// Products
		v1.GET("/products", handler.GetProducts)
		v1.GET("/products/featured", handler.GetFeaturedProducts)
		v1.GET("/products/of-the-month", handler.GetProductOfTheMonth)
		v1.GET("/products/:slug", handler.GetProduct)
		v1.GET("/products/:slug/related", handler.GetRelatedProducts)

		// Categories
		v1.GET("/categories", handler.GetCategories)
		v1.GET("/categories/:slug", handler.GetCategory)
		v1.GET("/categories/:slug/products", handler.GetCategoryProducts)

		// Blog
		v1.GET("/blog/posts", handler.GetPosts)
		v1.GET("/blog/posts/latest", handler.GetLatestPosts)
		v1.GET("/blog/posts/:slug", handler.GetPost)
		v1.GET("/blog/posts/:slug/related", handler.GetRelatedPosts)
		v1.GET("/blog/categories", handler.GetBlogCategories)

		// Careers and company pages
		v1.GET("/careers/jobs", handler.GetJobs)
		v1.GET("/careers/jobs/:slug", handler.GetJob)
		v1.GET("/company", handler.GetCompany)

		// Form submissions
		forms := v1.Group("/forms")
		{
			forms.POST("/quote", handler.SubmitQuote)
			forms.POST("/sample", handler.SubmitSample)
			forms.POST("/catalogue", handler.SubmitCatalogue)
			forms.POST("/meeting", handler.SubmitMeeting)
			forms.POST("/job-application", handler.SubmitJobApplication)
			forms.POST("/general-application", handler.SubmitGeneralApplication)
		}

		// Protected admin endpoints
		admin := v1.Group("/admin")
		admin.Use(api.AuthMiddleware(), api.AdminMiddleware())
		{
			admin.GET("/catalog/stats", handler.CatalogStats)
			admin.POST("/catalog/reload", handler.ReloadCatalog)
		}
	}

	// Root endpoint for basic info
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "content-service",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	return router
}

// corsMiddleware adds CORS headers to allow cross-origin requests
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
