package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// upstream providers, the generative AI backend and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8000" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the CORS origins; "*" allows any
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"spacescope" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Upstream configures the third-party data providers
	Upstream struct {
		// Timeout is the time budget of every upstream call
		Timeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"5s" yaml:"timeout"`
		// MaxBodyBytes caps the size of upstream response bodies
		MaxBodyBytes int64 `env:"UPSTREAM_MAX_BODY_BYTES" env-default:"4194304" yaml:"maxBodyBytes"`
		// UserAgent is sent with every upstream request
		UserAgent string `env:"UPSTREAM_USER_AGENT" env-default:"spacescope-gateway" yaml:"userAgent"`

		ISSURL      string `env:"UPSTREAM_ISS_URL" yaml:"issURL"`
		SolarURL    string `env:"UPSTREAM_SOLAR_URL" yaml:"solarURL"`
		APODURL     string `env:"UPSTREAM_APOD_URL" yaml:"apodURL"`
		SpaceXURL   string `env:"UPSTREAM_SPACEX_URL" yaml:"spacexURL"`
		TechPortURL string `env:"UPSTREAM_TECHPORT_URL" yaml:"techportURL"`
		// NASAAPIKey is the api.nasa.gov key
		NASAAPIKey string `env:"NASA_API_KEY" env-default:"DEMO_KEY" yaml:"nasaAPIKey"`

		WeatherURL string `env:"UPSTREAM_WEATHER_URL" yaml:"weatherURL"`
		// WeatherAPIKey is the weatherapi.com key; without it weather is always simulated
		WeatherAPIKey string `env:"WEATHER_API_KEY" yaml:"weatherAPIKey"`

		OpenMeteo struct {
			GeocodingURL  string `env:"OPENMETEO_GEOCODING_URL" yaml:"geocodingURL"`
			ForecastURL   string `env:"OPENMETEO_FORECAST_URL" yaml:"forecastURL"`
			AirQualityURL string `env:"OPENMETEO_AIR_QUALITY_URL" yaml:"airQualityURL"`
			FloodURL      string `env:"OPENMETEO_FLOOD_URL" yaml:"floodURL"`
			ArchiveURL    string `env:"OPENMETEO_ARCHIVE_URL" yaml:"archiveURL"`
		} `yaml:"openMeteo"`
	} `yaml:"upstream"`

	// Assistant configures the generative AI backend
	Assistant struct {
		// APIKey is the Gemini API key; without it every AI call serves its fallback
		APIKey string `env:"GEMINI_API_KEY" yaml:"apiKey"`
		// Model is the generation model
		Model string `env:"ASSISTANT_MODEL" env-default:"gemini-2.5-flash" yaml:"model"`
		// EmbeddingModel is used to index the RAG corpus
		EmbeddingModel string `env:"ASSISTANT_EMBEDDING_MODEL" env-default:"gemini-embedding-001" yaml:"embeddingModel"`
		// BaseURL overrides the Gemini endpoint
		BaseURL string `env:"ASSISTANT_BASE_URL" yaml:"baseURL"`
		// Timeout is the time budget of every generation call
		Timeout time.Duration `env:"ASSISTANT_TIMEOUT" env-default:"20s" yaml:"timeout"`
		// TutorSessions caps the number of live tutoring sessions
		TutorSessions int `env:"ASSISTANT_TUTOR_SESSIONS" env-default:"1000" yaml:"tutorSessions"`
		// TutorSessionTTL is how long an idle tutoring session is kept
		TutorSessionTTL time.Duration `env:"ASSISTANT_TUTOR_SESSION_TTL" env-default:"2h" yaml:"tutorSessionTTL"`
		// StellarImageCacheSize caps the number of cached stellar images
		StellarImageCacheSize int `env:"ASSISTANT_STELLAR_IMAGE_CACHE_SIZE" env-default:"256" yaml:"stellarImageCacheSize"`
	} `yaml:"assistant"`

	// RAG configures the retrieval-augmented answer engine
	RAG struct {
		// Dir holds the .txt documents to index
		Dir string `env:"RAG_DIR" env-default:"rag_data" yaml:"dir"`
		// TopK is the number of documents given to the model as context
		TopK int `env:"RAG_TOP_K" env-default:"3" yaml:"topK"`
		// AnswerCacheSize caps the number of cached answers
		AnswerCacheSize int `env:"RAG_ANSWER_CACHE_SIZE" env-default:"256" yaml:"answerCacheSize"`
		// AnswerCacheTTL is how long an answer is reused
		AnswerCacheTTL time.Duration `env:"RAG_ANSWER_CACHE_TTL" env-default:"10m" yaml:"answerCacheTTL"`
	} `yaml:"rag"`

	// Worker configures the background feed refresh
	Worker struct {
		// Enabled starts the job queue with the server
		Enabled bool `env:"WORKER_ENABLED" env-default:"true" yaml:"enabled"`
		// MaxWorkers is the concurrency of the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// RefreshInterval is how often feed snapshots are taken
		RefreshInterval time.Duration `env:"WORKER_REFRESH_INTERVAL" env-default:"5m" yaml:"refreshInterval"`
		// SnapshotRetention is how long snapshots are kept
		SnapshotRetention time.Duration `env:"WORKER_SNAPSHOT_RETENTION" env-default:"168h" yaml:"snapshotRetention"`
	} `yaml:"worker"`

	// JWT holds the RS256 key pair used for bearer authentication
	JWT struct {
		// PublicKey verifies bearer tokens (PEM)
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs development tokens (PEM)
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// When the file does not exist the configuration is read from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
