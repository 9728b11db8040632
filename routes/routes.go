package routes

import (
	"net/http"
	"time"

	"opdflow/handlers"
	"opdflow/middleware"
	"opdflow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.MeHandler)
		api.PUT("/fcm-token", hb.Auth.UpdateFCMTokenHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterDoctorRoutes registers doctor profile and slot endpoints. Listings
// and slot derivation are public so patients can browse before signing in.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hb.Doctors.ListDoctorsHandler)
		api.GET("/:id/slots", hb.Doctors.GetSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.Doctors.RegisterDoctorHandler)
		protected.GET("/me", hb.Doctors.MyProfileHandler)
		protected.PUT("/me", hb.Doctors.UpdateDoctorHandler)
		protected.PUT("/me/timings", hb.Doctors.UpdateTimingsHandler)
		protected.POST("/me/avatar", hb.Uploads.UploadProfileImageHandler)

		api.GET("/:id", hb.Doctors.GetDoctorHandler)
	}
}

// RegisterAppointmentRoutes registers the appointment lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Appointments.CreateAppointmentHandler)
		api.GET("", hb.Appointments.ListAppointmentsHandler)
		api.GET("/stats/patient", hb.Appointments.PatientStatsHandler)
		api.GET("/stats/doctor", hb.Appointments.DoctorStatsHandler)
		api.PUT("/:id/status", hb.Appointments.UpdateStatusHandler)
	}
}

// RegisterPaymentRoutes registers consultation fee payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/intent", hb.Payments.CreatePaymentIntentHandler)
		api.POST("/confirm", hb.Payments.ConfirmPaymentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
