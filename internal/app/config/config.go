package config

import (
	"uniacad-portal/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Minio: Minio{
			Host:      utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:      utils.GetEnvString("MINIO_PORT", "9000"),
			AccessKey: utils.GetEnvString("MINIO_ACCESS_KEY", "defaultAccessKey"),
			SecretKey: utils.GetEnvString("MINIO_SECRET_KEY", "defaultSecretKey"),
			UseSSL:    utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			PublicBaseUrl:            utils.GetEnvString("APP_PUBLIC_BASE_URL", "http://localhost:8080"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Asia/Ho_Chi_Minh"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			AvatarBucketName:         utils.GetEnvString("APP_AVATAR_BUCKET_NAME", "student-avatars"),
		},
		AcademicAPI: AcademicAPI{
			BaseUrl: utils.GetEnvString("ACADEMIC_API_BASE_URL", "http://localhost:9090/UniAcad"),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:                 utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api-merchant.payos.vn"),
			ClientID:                utils.GetEnvString("PAYMENT_GATEWAY_CLIENT_ID", ""),
			ApiKey:                  utils.GetEnvString("PAYMENT_GATEWAY_API_KEY", ""),
			ReturnPath:              utils.GetEnvString("PAYMENT_GATEWAY_RETURN_PATH", "/portal/payment/success"),
			CancelPath:              utils.GetEnvString("PAYMENT_GATEWAY_CANCEL_PATH", "/portal/payment/cancel"),
			CheckoutRateLimitPerMin: utils.GetEnvInt("PAYMENT_GATEWAY_CHECKOUT_RATE_LIMIT_PER_MIN", 5),
		},
		Session: Session{
			JWTSecret:          utils.GetEnvString("SESSION_JWT_SECRET", "defaultSessionSecret"),
			CookieName:         utils.GetEnvString("SESSION_COOKIE_NAME", "uniacad_session"),
			ExpiredTimeInHours: utils.GetEnvInt("SESSION_EXPIRED_TIME_IN_HOURS", 12),
		},
	}
}
