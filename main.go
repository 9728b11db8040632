package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opdflow/config"
	"opdflow/cron"
	"opdflow/database"
	appointmentRepoPkg "opdflow/database/repository/appointment"
	doctorRepoPkg "opdflow/database/repository/doctor"
	userRepoPkg "opdflow/database/repository/user"
	"opdflow/handlers"
	"opdflow/middleware"
	"opdflow/routes"
	appointmentSvc "opdflow/services/appointment"
	doctorSvc "opdflow/services/doctor"
	"opdflow/services/meeting"
	"opdflow/services/notification"
	paymentSvc "opdflow/services/payment"
	userSvc "opdflow/services/user"
	"opdflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	userService := &userSvc.DefaultUserService{
		Repo: userRepo,
	}

	doctorService := &doctorSvc.DefaultDoctorService{
		Repo:  doctorRepo,
		Users: userRepo,
	}

	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	appointmentService := &appointmentSvc.DefaultAppointmentService{
		Repo:       apptRepo,
		DoctorRepo: doctorRepo,
		Meetings:   meeting.NewMeetingService(),
		Notifier:   notificationService,
		Reminders:  cron.NewReminderClient(),
	}

	paymentService := &paymentSvc.StripePaymentService{
		Appointments: apptRepo,
		Doctors:      doctorRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Auth: &handlers.AuthHandler{
			UserService: userService,
		},
		Doctors: &handlers.DoctorHandler{
			DoctorService: doctorService,
		},
		Appointments: &handlers.AppointmentHandler{
			AppointmentService: appointmentService,
		},
		Payments: &handlers.PaymentHandler{
			PaymentService: paymentService,
		},
		Uploads: &handlers.UploadHandler{
			Storage:       cloudinaryStorageService,
			DoctorService: doctorService,
		},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(notificationService, apptRepo)
	utils.StartHealthMonitor(database.MongoClient, utils.GetCacheClient(), utils.GetAuthCacheClient())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
