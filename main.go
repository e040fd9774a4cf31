// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stream-music-portal/controllers"
	"stream-music-portal/logger"
	"stream-music-portal/middleware"
	"stream-music-portal/services"
	"stream-music-portal/websocket"
)

func main() {
	// Load local overrides; a missing .env is fine in deployed environments.
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("No .env file found, using environment as-is")
	}
	logger.SetLogLevel(os.Getenv("APP_ENV"))

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/health", controllers.Health)

	// Read configuration from environment variables
	applicationURL := os.Getenv("APPLICATION_URL")
	if applicationURL == "" {
		applicationURL = "http://localhost:8080"
	}
	websocketURL := os.Getenv("WEBSOCKET_URL")
	if websocketURL == "" {
		websocketURL = "ws://localhost:8080/notifications/stream"
	}
	controllers.SetConfig(applicationURL, websocketURL)

	// Initialize session store
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "secret"
	}
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   false, // Set to true behind TLS
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("streamsession", store))

	// Determine the absolute path to the templates directory
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	templatesDir := filepath.Join(basepath, "templates", "*.html")

	fmt.Println("Templates Path:", templatesDir)
	router.LoadHTMLGlob(templatesDir)
	router.Static("/static", "./static")

	// Wire the in-memory services. The toast broadcaster pushes every new
	// notification to connected clients over the WebSocket hub.
	notifications := services.NewNotificationService(websocket.ToastBroadcaster{}, services.SeedNotifications())
	catalog := services.NewCatalogService(services.SeedReleases(), notifications)
	payouts := services.NewPayoutService(services.SeedPayouts(), notifications)
	tickets := services.NewTicketService(services.SeedTickets(), notifications)
	auth := services.NewAuthService(services.DemoCredentialVerifier{})
	presence := services.NewPresenceService()
	presence.StartCleanup(time.Minute, 10*time.Minute)
	artists := services.SeedArtists()

	pageController := controllers.NewPageController(catalog, payouts, tickets, notifications, artists, presence)
	adminController := controllers.NewAdminController(catalog, payouts, tickets, notifications, artists, presence, pageController)
	uploadController := controllers.NewUploadController(catalog, services.MockArtistSearcher{})
	authController := controllers.NewAuthController(auth, notifications, presence, uploadController)
	supportController := controllers.NewSupportController(tickets)
	royaltyController := controllers.NewRoyaltyController(payouts)
	notificationController := controllers.NewNotificationController(notifications)

	// Public routes
	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/login") })
	router.GET("/login", authController.ShowLoginPage)
	router.POST("/login", authController.PerformLogin)
	router.GET("/signup", authController.ShowSignUpPage)
	router.POST("/signup", authController.PerformSignUp)
	router.GET("/logout", authController.Logout)

	// Protected routes
	protected := router.Group("/", middleware.AuthRequired)
	{
		protected.GET("/dashboard", pageController.ShowDashboard)
		protected.GET("/catalog", pageController.ShowCatalog)
		protected.GET("/catalog/export", pageController.ExportCatalog)
		protected.GET("/royalties", pageController.ShowRoyalties)
		protected.POST("/royalties/request", royaltyController.RequestPayout)
		protected.POST("/royalties/methods", royaltyController.AddPayoutMethod)
		protected.GET("/support", pageController.ShowSupport)
		protected.POST("/support/tickets", supportController.CreateTicket)
		protected.GET("/support/whatsapp", supportController.WhatsAppRedirect)
		protected.GET("/support/whatsapp/qrcode", supportController.WhatsAppQRCode)
		protected.GET("/settings", pageController.ShowSettings)
		protected.GET("/artists", pageController.ShowArtists)
		protected.GET("/analytics", pageController.ShowAnalytics)
		protected.GET("/labels", pageController.ShowLabels)
		protected.GET("/heartbeat", pageController.Heartbeat)

		protected.GET("/upload", uploadController.Page(pageController))
		protected.POST("/upload/metadata", uploadController.SaveMetadata)
		protected.POST("/upload/assets", uploadController.StageAssets)
		protected.POST("/upload/plan", uploadController.ChoosePlan)
		protected.POST("/upload/back", uploadController.Back)
		protected.POST("/upload/submit", uploadController.Submit)
		protected.POST("/upload/reset", uploadController.StartOver)
		protected.GET("/upload/artists/search", uploadController.SearchArtists)

		protected.GET("/notifications", notificationController.Inbox)
		protected.POST("/notifications/read", notificationController.MarkRead)
		protected.GET("/notifications/stream", func(c *gin.Context) {
			websocket.ServeWs(c.Writer, c.Request)
		})
	}

	// Master-only routes
	admin := router.Group("/admin", middleware.AuthRequired, middleware.AdminRequired())
	{
		admin.GET("", adminController.AdminPanel)
		admin.POST("/releases/approve", adminController.ApproveRelease)
		admin.POST("/releases/reject", adminController.RejectRelease)
		admin.POST("/releases/correction", adminController.RequestCorrection)
		admin.POST("/payouts/process", adminController.ProcessPayout)
		admin.POST("/tickets/reply", adminController.ReplyTicket)
		admin.POST("/tickets/resolve", adminController.ResolveTicket)
	}

	// Start the WebSocket handler
	go websocket.HandleMessages()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info.Printf("Starting portal on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
