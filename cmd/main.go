package main

import (
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gamegroove/dal"
	"gamegroove/db"
	"gamegroove/handlers"
	"gamegroove/middleware"
	"gamegroove/monitoring"
	"gamegroove/ratelimit"
	"gamegroove/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger := utils.NewLogger()

	conn, err := db.Connect()
	if err != nil {
		log.Fatal("failed to connect to the database:", err)
	}

	// Per-call bound for every stored operation, seconds
	timeout := dal.DefaultTimeout
	if raw := os.Getenv("STORE_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}
	store := dal.NewStore(conn, logger, timeout)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	h := handlers.New(store, logger, []byte(secret))

	limiter, err := ratelimit.New()
	if err != nil {
		logger.LogWarn("Redis unavailable, rate limiting disabled", map[string]interface{}{"error": err.Error()})
		limiter = nil
	} else {
		defer limiter.Close()
	}

	monitoring.InitMetrics()

	// Set to release mode in production
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RemovePoweredBy())
	r.Use(h.SessionMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorLogger(logger))
	r.Use(middleware.RateLimit(limiter, 1000, time.Hour))
	r.Use(monitoring.PrometheusMiddleware())

	r.GET("/metrics", monitoring.PrometheusHandler())

	// Session resolution happens globally; each handler runs the
	// authorization policy itself, so public and protected routes share one
	// registration style.
	r.POST("/login", h.Login)
	r.POST("/users", h.Register)
	r.GET("/users", h.GetUsers)
	r.GET("/users/:id", h.GetUserByID)
	r.PUT("/users/:id", h.UpdateUser)
	r.PUT("/users/:id/password", h.ChangePassword)
	r.DELETE("/users/:id", h.DeleteUser)

	r.GET("/games", h.GetGames)
	r.GET("/games/:id", h.GetGameByID)
	r.POST("/games", h.CreateGame)
	r.PUT("/games/:id", h.UpdateGame)
	r.DELETE("/games/:id", h.DeleteGame)

	r.GET("/reviews", h.GetReviews)
	r.GET("/reviews/:id", h.GetReviewByID)
	r.POST("/reviews", h.CreateReview)
	r.PUT("/reviews/:id", h.UpdateReview)
	r.DELETE("/reviews/:id", h.DeleteReview)

	r.GET("/requests", h.GetRequests)
	r.GET("/requests/:id", h.GetRequestByID)
	r.POST("/requests", h.CreateRequest)
	r.DELETE("/requests/:id", h.DeleteRequest)

	r.GET("/home", h.GetHomeSummary)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Check if HTTPS should be enabled
	useHTTPS := os.Getenv("USE_HTTPS") == "true"
	certFile := os.Getenv("TLS_CERT_FILE")
	keyFile := os.Getenv("TLS_KEY_FILE")

	if useHTTPS && certFile != "" && keyFile != "" {
		log.Println("Starting server with HTTPS on port", port)

		tlsConfig := &tls.Config{
			MinVersion:       tls.VersionTLS12,
			CurvePreferences: []tls.CurveID{tls.CurveP521, tls.CurveP384, tls.CurveP256},
		}

		server := &http.Server{
			Addr:      ":" + port,
			Handler:   r,
			TLSConfig: tlsConfig,
		}

		if err := server.ListenAndServeTLS(certFile, keyFile); err != nil {
			log.Fatal("Failed to start HTTPS server:", err)
		}
	} else {
		log.Println("Starting server with HTTP on port", port)

		if err := r.Run(":" + port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}
}
