package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceStatic = "static"
	CatalogSourceMongo  = "mongo"
)

type Config struct {
	Env                string
	ServerAddr         string
	FrontendOrigin     string
	MarketingAPIKey    string
	CatalogSource      string
	MongoURI           string
	MongoDB            string
	MongoEnabled       bool
	RateLimitContact   int
	RateLimitWindowSec int
	RedisURL           string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	CacheTTLSeconds    int
	AdminAPIKey        string
	AdminUser          string
	AdminPasswordHash  string
	JWTSecret          string
	AccessTTLMinutes   int
	CookieSecure       bool
	BrevoAPIKey        string
	BrevoSenderEmail   string
	BrevoSenderName    string
	BrevoSandbox       bool
	ContactInbox       string
	Timezone           *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func Load() (*Config, error) {
	// godotenv.Load never overrides variables already present in the environment.
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	loc, err := time.LoadLocation(getEnv("TZ", "UTC"))
	if err != nil {
		return nil, err
	}

	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017/agency")
	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "agency"
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		FrontendOrigin:     getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
		MarketingAPIKey:    os.Getenv("MARKETING_API_KEY"),
		CatalogSource:      strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceStatic)),
		MongoURI:           mongoURI,
		MongoDB:            mongoDB,
		MongoEnabled:       os.Getenv("MONGO_URI") != "",
		RateLimitContact:   getEnvInt("RATE_LIMIT_CONTACT", 5),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds:    getEnvInt("CACHE_TTL_SECONDS", 60),
		AdminAPIKey:        getEnv("ADMIN_API_KEY", ""),
		AdminUser:          getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTTLMinutes:   getEnvInt("ACCESS_TTL_MINUTES", 60),
		CookieSecure:       getEnvBool("COOKIE_SECURE", false),
		BrevoAPIKey:        getEnv("BREVO_API_KEY", ""),
		BrevoSenderEmail:   getEnv("BREVO_SENDER_EMAIL", ""),
		BrevoSenderName:    getEnv("BREVO_SENDER_NAME", ""),
		BrevoSandbox:       getEnvBool("BREVO_SANDBOX", false),
		ContactInbox:       getEnv("CONTACT_INBOX", ""),
		Timezone:           loc,
	}

	if cfg.CatalogSource != CatalogSourceStatic && cfg.CatalogSource != CatalogSourceMongo {
		return nil, errors.New("CATALOG_SOURCE must be static or mongo")
	}

	return cfg, nil
}

// UsesMongo reports whether a database connection is needed. Without one the
// marketing API still runs from the built-in catalog, but contact submissions
// and the admin area are disabled.
func (c *Config) UsesMongo() bool {
	return c.MongoEnabled || c.CatalogSource == CatalogSourceMongo
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// mongodb URIs sometimes include extra path segments; we only support the first one as db name.
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}
