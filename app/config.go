package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout         = 30
	defaultAddress         = ":9090"
	defaultCacheDB         = 0
	defaultDriver          = "mysql"
	defaultAccessTokenAge  = 3000
	defaultRefreshTokenAge = 7 * 24 * 60 * 60
	defaultViewConcurrency = 8
	dbMaxRetry             = 10
	dbRetryIntervalSec     = 2
)

type config struct {
	ServerAddress   string
	ContextTimeout  time.Duration
	LogLevel        string
	LogFormat       string
	ViewConcurrency int

	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPass        string
	DBName        string
	DBAutoMigrate bool

	CacheHost string
	CachePort string
	CachePass string
	CacheDB   int

	AccessTokenKey  string
	RefreshTokenKey string
	AccessTokenAge  time.Duration
	RefreshTokenAge time.Duration
}

func loadConfig() config {
	return config{
		ServerAddress:   envString("SERVER_ADDRESS", defaultAddress),
		ContextTimeout:  time.Duration(envInt("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,
		LogLevel:        envString("LOG_LEVEL", "info"),
		LogFormat:       envString("LOG_FORMAT", "text"),
		ViewConcurrency: envInt("VIEW_THREAD_CONCURRENCY", defaultViewConcurrency),

		DBDriver:      strings.ToLower(envString("DATABASE_DRIVER", defaultDriver)),
		DBHost:        os.Getenv("DATABASE_HOST"),
		DBPort:        os.Getenv("DATABASE_PORT"),
		DBUser:        os.Getenv("DATABASE_USER"),
		DBPass:        os.Getenv("DATABASE_PASS"),
		DBName:        os.Getenv("DATABASE_NAME"),
		DBAutoMigrate: envBool("DATABASE_AUTOMIGRATE", true),

		CacheHost: os.Getenv("CACHE_HOST"),
		CachePort: os.Getenv("CACHE_PORT"),
		CachePass: os.Getenv("CACHE_PASS"),
		CacheDB:   envInt("CACHE_DB", defaultCacheDB),

		AccessTokenKey:  os.Getenv("ACCESS_TOKEN_KEY"),
		RefreshTokenKey: os.Getenv("REFRESH_TOKEN_KEY"),
		AccessTokenAge:  time.Duration(envInt("ACCESS_TOKEN_AGE", defaultAccessTokenAge)) * time.Second,
		RefreshTokenAge: time.Duration(envInt("REFRESH_TOKEN_AGE", defaultRefreshTokenAge)) * time.Second,
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logrus.Warnf("failed to parse %s, using default %d", key, fallback)
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		logrus.Warnf("failed to parse %s, using default %t", key, fallback)
		return fallback
	}
	return v
}

func setupLogger(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
