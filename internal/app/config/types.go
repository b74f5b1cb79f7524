package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Minio          *minio.Client
		RabbitMQ       *amqp.Connection
		Logger         *zap.Logger
		AccessLogger   *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App            App
		AcademicAPI    AcademicAPI
		PaymentGateway PaymentGateway
		Session        Session
	}

	DriverConfig struct {
		Redis    Redis
		Minio    Minio
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                      string
		Port                     string
		PublicBaseUrl            string
		Timezone                 string
		MaxRequests              int
		ShutdownTimeoutInSeconds int
		RequestTimeoutInSeconds  int
		AvatarBucketName         string
	}

	AcademicAPI struct {
		BaseUrl string
	}

	PaymentGateway struct {
		BaseUrl                 string
		ClientID                string
		ApiKey                  string
		ReturnPath              string
		CancelPath              string
		CheckoutRateLimitPerMin int
	}

	Session struct {
		JWTSecret          string
		CookieName         string
		ExpiredTimeInHours int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Minio struct {
		Host      string
		Port      string
		AccessKey string
		SecretKey string
		UseSSL    bool
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
