package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Auth      AuthConfig
	Retention RetentionConfig
	OpenAPI   OpenAPIConfig
	Log       LogConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	// URL overrides the discrete fields when set (full DSN).
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// SessionConfig controls the session cookie and server-side session lifetime.
type SessionConfig struct {
	CookieName     string
	CookieSameSite string // Lax, Strict, None
	CookieSecure   bool
	CookieHTTPOnly bool
	TTLHours       int
}

type RedisConfig struct {
	URL      string // empty = use the in-memory session store
	Password string
	DB       int
}

type CORSConfig struct {
	// AllowOrigins from FRONTEND_ORIGIN (comma-separated). The session cookie
	// travels cross-origin, so credentials are always allowed and a wildcard
	// origin would be rejected by browsers.
	AllowOrigins []string
}

type AuthConfig struct {
	// VerifyPasswords switches login from the accept-any stub to bcrypt
	// verification against the stored hash.
	VerifyPasswords bool
}

type RetentionConfig struct {
	// CompletedTaskDays deletes tasks completed more than N days ago.
	// 0 disables the sweep.
	CompletedTaskDays int
	CronExpr          string
}

type OpenAPIConfig struct {
	OutputPath string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine, plain environment variables work too.
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	sessionTTL, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "168"))
	if sessionTTL <= 0 {
		sessionTTL = 168
	}
	retentionDays, _ := strconv.Atoi(getEnv("RETENTION_DAYS", "0"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Todo Backend"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			URL:      getEnv("MYSQL_URL", ""),
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "root"),
			Password: getEnv("MYSQL_PASSWORD", ""),
			DBName:   getEnv("MYSQL_DB", "todo_db"),
		},
		Session: SessionConfig{
			CookieName:     getEnv("SESSION_COOKIE_NAME", "todo_session"),
			CookieSameSite: getEnv("SESSION_COOKIE_SAMESITE", "Lax"),
			CookieSecure:   strings.EqualFold(getEnv("SESSION_COOKIE_SECURE", "false"), "true"),
			CookieHTTPOnly: strings.EqualFold(getEnv("SESSION_COOKIE_HTTPONLY", "true"), "true"),
			TTLHours:       sessionTTL,
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		CORS: CORSConfig{
			AllowOrigins: parseOrigins(getEnv("FRONTEND_ORIGIN", "")),
		},
		Auth: AuthConfig{
			VerifyPasswords: getEnv("AUTH_VERIFY_PASSWORDS", "false") == "true",
		},
		Retention: RetentionConfig{
			CompletedTaskDays: retentionDays,
			CronExpr:          getEnv("RETENTION_CRON", "0 3 * * *"),
		},
		OpenAPI: OpenAPIConfig{
			OutputPath: getEnv("OPENAPI_OUT", "docs/openapi.json"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
	}

	return config, nil
}

// DSN builds the MySQL DSN, preferring the full MYSQL_URL override.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.DBName)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseOrigins splits FRONTEND_ORIGIN; defaults cover common local dev setups.
func parseOrigins(s string) []string {
	defaults := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	if s == "" {
		return defaults
	}
	var origins []string
	for _, p := range strings.Split(s, ",") {
		o := strings.TrimSpace(p)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return defaults
	}
	return origins
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
