package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uniacad-portal/internal/app/config"
	"uniacad-portal/internal/app/delivery/http/middlewares"
	"uniacad-portal/internal/app/delivery/http/render"
	"uniacad-portal/internal/app/delivery/http/routers"
	"uniacad-portal/internal/app/drivers/database"
	"uniacad-portal/internal/app/drivers/logger"
	"uniacad-portal/internal/app/drivers/messaging"
	"uniacad-portal/internal/app/drivers/storage"
	"uniacad-portal/internal/app/services/academic"
	"uniacad-portal/internal/app/services/core/attendance"
	"uniacad-portal/internal/app/services/core/marks"
	"uniacad-portal/internal/app/services/core/payments"
	"uniacad-portal/internal/app/services/core/profile"
	"uniacad-portal/internal/app/services/core/timetable"
	"uniacad-portal/internal/app/services/shared/payment_gateway"
	"uniacad-portal/internal/app/services/shared/paymentevents"
	"uniacad-portal/internal/app/services/shared/ratelimiter"
	sharedredis "uniacad-portal/internal/app/services/shared/redis"
	"uniacad-portal/internal/app/services/shared/sessionstore"
	sharedstorage "uniacad-portal/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()
	accessLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("error loading timezone", zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitConn,
		Logger:         log,
		AccessLogger:   accessLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("portal listening", zap.String("addr", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("waiting for pending requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	rabbitConn.Close()

	log.Info("server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, location *time.Location) {
	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	sessionRepository := sessionstore.NewSessionRedisRepository(redisRepository)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	limiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)

	eventPublisher, err := paymentevents.NewPublisher(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("error setting up payment event publisher", zap.Error(err))
	}

	renderer, err := render.NewRenderer(bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("error parsing templates", zap.Error(err))
	}

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, sessionRepository, bootstrap.InternalConfig)

	// Upstream academic clients
	academicBaseUrl := bootstrap.InternalConfig.AcademicAPI.BaseUrl
	timetableClient := academic.NewTimetableClient(academicBaseUrl)
	markReportClient := academic.NewMarkReportClient(academicBaseUrl)
	attendanceClient := academic.NewAttendanceClient(academicBaseUrl)
	profileClient := academic.NewProfileClient(academicBaseUrl)

	// Payment gateway
	payosService := payment_gateway.NewPayosService(bootstrap.InternalConfig)

	// Timetable
	timetableUsecase := timetable.NewTimetableUsecase(timetableClient, location, bootstrap.Logger)
	timetableController := timetable.NewTimetableController(bootstrap.Logger, renderer, timetableUsecase)

	// Marks
	markReportUsecase := marks.NewMarkReportUsecase(markReportClient, bootstrap.Logger)
	markController := marks.NewMarkController(bootstrap.Logger, renderer, markReportUsecase)

	// Attendance
	attendanceUsecase := attendance.NewAttendanceUsecase(attendanceClient, bootstrap.Logger)
	attendanceController := attendance.NewAttendanceController(bootstrap.Logger, renderer, attendanceUsecase)

	// Profile
	profileUsecase := profile.NewProfileUsecase(profileClient, minioStorage, bootstrap.InternalConfig.App.AvatarBucketName, bootstrap.Logger)
	profileController := profile.NewProfileController(bootstrap.Logger, renderer, profileUsecase)

	// Payments
	publicBaseUrl := bootstrap.InternalConfig.App.PublicBaseUrl
	paymentUsecase := payments.NewPaymentUsecase(
		payosService,
		eventPublisher,
		limiter,
		publicBaseUrl+bootstrap.InternalConfig.PaymentGateway.ReturnPath,
		publicBaseUrl+bootstrap.InternalConfig.PaymentGateway.CancelPath,
		bootstrap.InternalConfig.PaymentGateway.CheckoutRateLimitPerMin,
		bootstrap.Logger,
	)
	paymentController := payments.NewPaymentController(bootstrap.Logger, renderer, paymentUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		bootstrap.AccessLogger,
		timetableController,
		markController,
		attendanceController,
		profileController,
		paymentController,
	)
}
