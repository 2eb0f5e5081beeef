package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/handlers/announcements"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/handlers/auth"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/handlers/blog"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/handlers/events"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/handlers/gallery"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/handlers/ministries"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/handlers/payments"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/handlers/prayer"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/handlers/schedule"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/handlers/visitors"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/handlers/volunteers"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/migrations"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/models"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/seed"
	"github.com/elitewebkenya-a11y/mku-cu-connect-sub001/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Internal server error"})
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()

	migrations.MigrateContent()
	migrations.MigrateForms()
	migrations.MigratePayments()
	utils.DB.AutoMigrate(&models.User{})

	// Seed initial data
	if err := seed.SeedAdminUser(); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := seed.SeedMinistries(); err != nil {
		log.Fatalf("Failed to seed ministries: %v", err)
	}
	if err := seed.SeedSchedule(); err != nil {
		log.Fatalf("Failed to seed schedule: %v", err)
	}
	if err := seed.SeedAnnouncement(); err != nil {
		log.Fatalf("Failed to seed announcement: %v", err)
	}

	// Payment handlers get their configuration up front so credential
	// problems show in the logs at startup, not on the first donation.
	paymentCfg := payments.LoadConfig()
	if !paymentCfg.HasGatewayCredentials() {
		log.Println("Payment gateway credentials are not configured; donation initiation will fail until they are set")
	}
	donations := payments.NewHandler(utils.DB, paymentCfg)

	// Public content
	r.GET("/events", events.GetUpcomingEvents)
	r.GET("/events/:id", events.GetEvent)
	r.GET("/featured-events", events.GetFeaturedEvents)
	r.GET("/ministries", ministries.GetMinistries)
	r.GET("/ministries/:id", ministries.GetMinistry)
	r.GET("/schedule", schedule.GetWeeklySchedule)
	r.GET("/gallery", gallery.GetGalleryImages)
	r.GET("/blog", blog.GetPosts)
	r.GET("/blog/:slug", blog.GetPost)
	r.GET("/blog/:slug/comments", blog.GetApprovedComments)
	r.GET("/announcements/current", announcements.GetCurrentAnnouncement)

	// Public forms
	r.POST("/blog/:slug/comments", blog.SubmitComment)
	r.POST("/visitors", visitors.SubmitVisitorForm)
	r.POST("/volunteers", volunteers.SubmitVolunteerForm)
	r.POST("/prayer-requests", prayer.SubmitPrayerRequest)
	r.GET("/prayer-requests/:code", prayer.GetPrayerRequestByCode)

	// Donations
	r.POST("/donations/initiate", donations.InitiateDonation)
	r.POST("/donations/callback", donations.GatewayCallback)
	r.GET("/donations/status", donations.DonationStatus)
	r.POST("/donations/card-intent", donations.CreateCardDonationIntent)
	r.POST("/donations/stripe-webhook", donations.StripeWebhook)

	// Admin
	r.POST("/admin/login", auth.Login)
	r.POST("/admin/refresh", auth.RefreshToken)

	protected := r.Group("/admin")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("/logout", auth.Logout)
		protected.POST("/save-push-token", auth.SavePushToken)

		protected.GET("/comments/pending", blog.GetPendingComments)
		protected.POST("/comments/:id/approve", blog.ApproveComment)
		protected.DELETE("/comments/:id", blog.DeleteComment)

		protected.GET("/prayer-requests", prayer.GetPrayerRequests)
		protected.POST("/prayer-requests/:id/prayed", prayer.MarkPrayedFor)
		protected.POST("/prayer-requests/:id/archive", prayer.ArchivePrayerRequest)

		protected.GET("/donations", donations.ListDonations)
		protected.GET("/visitors", visitors.GetVisitors)
		protected.GET("/volunteers", volunteers.GetVolunteers)

		protected.POST("/events", events.CreateEvent)
		protected.PUT("/events/:id", events.UpdateEvent)
		protected.DELETE("/events/:id", events.DeleteEvent)
		protected.POST("/blog", blog.CreatePost)
		protected.POST("/gallery", gallery.AddGalleryImage)
		protected.DELETE("/gallery/:id", gallery.DeleteGalleryImage)
		protected.POST("/announcements", announcements.CreateAnnouncement)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
