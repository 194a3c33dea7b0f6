package config

import (
	"fmt"
	"net"
	"net/url"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	sslModeDisable = "disable"
	sslModeRequire = "require"
)

type PostgresTarget struct {
	Host     string `envconfig:"HOST"     default:"localhost"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"     default:"postgres"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"     default:"eventbookingdb"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

// LegacyPostgres holds the DB_HOST style variables older deployments set. They apply only
// when DB_HOST is present.
type LegacyPostgres struct {
	Host     string `envconfig:"DB_HOST"`
	Port     string `envconfig:"DB_PORT"     default:"5432"`
	Name     string `envconfig:"DB_NAME"     default:"eventbookingdb"`
	Username string `envconfig:"DB_USERNAME" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	SSL      string `envconfig:"SSL"`
}

type Config struct {
	// DatabaseURL overrides the read and write targets when set.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	LegacyPostgres

	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"eventbook"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"   default:"*"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"   default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"   default:"*"`
			Enable           bool     `envconfig:"ENABLE"            default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"100"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		Admin struct {
			Username     string `envconfig:"USERNAME"`
			PasswordHash string `envconfig:"PASSWORD_HASH"`
		} `envconfig:"ADMIN"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"     default:"localhost"`
				Port     string `envconfig:"PORT"     default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int            `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int            `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string         `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool           `envconfig:"AUTO_MIGRATE"`
			Prefix         string         `envconfig:"PREFIX"`
			Read           PostgresTarget `envconfig:"READ"`
			Write          PostgresTarget `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topic struct {
			Booking string `envconfig:"BOOKING" default:"booking-events"`
		} `envconfig:"TOPIC"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			Region          string `envconfig:"REGION"           default:"auto"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			ExportDirectory string `envconfig:"EXPORT_DIRECTORY" default:"exports"`
		} `envconfig:"S3"`
	}
}

// PostgresDSN returns the connection string for target, merged with params.
// DATABASE_URL takes precedence over the discrete settings.
func (c *Config) PostgresDSN(target PostgresTarget, params url.Values) string {
	if c.DatabaseURL != "" {
		return withParams(c.DatabaseURL, params)
	}

	target = c.LegacyPostgres.apply(target)

	name := target.Name
	if c.DB.Postgres.Prefix != "" {
		name = c.DB.Postgres.Prefix + name
	}

	query := url.Values{}
	query.Set("sslmode", target.SSLMode)

	if target.Timezone != "" {
		query.Set("timezone", target.Timezone)
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(target.Username, target.Password),
		Host:   net.JoinHostPort(target.Host, target.Port),
		Path:   "/" + name,
	}

	return withParams(dsn.String()+"?"+query.Encode(), params)
}

// apply replaces target with the legacy settings when DB_HOST is set. lib/pq has no
// "prefer" mode, so anything but SSL=disable connects with sslmode=require.
func (l LegacyPostgres) apply(target PostgresTarget) PostgresTarget {
	if l.Host == "" {
		return target
	}

	target.Host = l.Host
	target.Port = l.Port
	target.Name = l.Name
	target.Username = l.Username
	target.Password = l.Password
	target.SSLMode = sslModeRequire

	if l.SSL == sslModeDisable {
		target.SSLMode = sslModeDisable
	}

	return target
}

func withParams(dsn string, params url.Values) string {
	if len(params) == 0 {
		return dsn
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		log.Warn().Err(err).Msg("Could not parse database url, extra parameters ignored")

		return dsn
	}

	query := parsed.Query()
	for key, values := range params {
		for _, value := range values {
			query.Set(key, value)
		}
	}

	parsed.RawQuery = query.Encode()

	return parsed.String()
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
