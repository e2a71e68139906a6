package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Redis      RedisConfig
	Mail       MailConfig
	Cloudinary CloudinaryConfig
	Upload     UploadConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// CORSConfig origins may hold one "*" each (https://*.ezrent.app) or be a lone "*".
// CustomSchemas admits non-http origins such as the Expo dev client's exp://.
type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:8081,http://localhost:19006"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
	CustomSchemas    []string      `envconfig:"CORS_CUSTOM_SCHEMAS" default:"exp://"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	ItemTTL  time.Duration `envconfig:"REDIS_ITEM_TTL" default:"5m"`
}

// Provider selects the mail backend: smtp, sendgrid or log.
type MailConfig struct {
	Provider       string `envconfig:"MAIL_PROVIDER" default:"log"`
	From           string `envconfig:"MAIL_FROM" default:"EzRent <no-reply@ezrent.app>"`
	SMTPHost       string `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort       int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser       string `envconfig:"SMTP_USER" default:""`
	SMTPPassword   string `envconfig:"SMTP_PASSWORD" default:""`
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY" default:""`
	// SendTimeout bounds a single delivery attempt.
	SendTimeout time.Duration `envconfig:"MAIL_SEND_TIMEOUT" default:"30s"`
}

type CloudinaryConfig struct {
	CloudName string `envconfig:"CLOUDINARY_CLOUD_NAME" default:""`
	APIKey    string `envconfig:"CLOUDINARY_API_KEY" default:""`
	APISecret string `envconfig:"CLOUDINARY_API_SECRET" default:""`
	Folder    string `envconfig:"CLOUDINARY_FOLDER" default:"uploads"`
}

type UploadConfig struct {
	MaxFiles     int   `envconfig:"UPLOAD_MAX_FILES" default:"5"`
	MaxFileBytes int64 `envconfig:"UPLOAD_MAX_FILE_BYTES" default:"5242880"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:19006"},
			AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-jwt-signing",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Redis: RedisConfig{
			Addr:    "localhost:16379",
			ItemTTL: time.Minute,
		},
		Mail: MailConfig{
			Provider:    "log",
			From:        "EzRent <no-reply@ezrent.test>",
			SendTimeout: 5 * time.Second,
		},
		Cloudinary: CloudinaryConfig{
			Folder: "uploads",
		},
		Upload: UploadConfig{
			MaxFiles:     5,
			MaxFileBytes: 5 << 20,
		},
	}
}
