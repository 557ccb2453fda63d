package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDSN string

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TripCacheTTL  time.Duration

	RabbitMQURL string

	CORSOrigins []string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads configuration from the process environment, after merging a
// local .env file when one exists. Variables already set are not overridden.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env tidak terbaca: %v", err)
	}
	return envFrom(os.Getenv)
}

func envFrom(get func(string) string) Env {
	getenv := func(key, def string) string {
		if v := strings.TrimSpace(get(key)); v != "" {
			return v
		}
		return def
	}

	env := Env{
		AppAddr:       getenv("APP_ADDR", ":8080"),
		GinMode:       getenv("GIN_MODE", ""),
		DBDSN:         getenv("DB_DSN", ""),
		JWTSecret:     getenv("JWT_SECRET", "change-me-in-production"),
		JWTTTL:        parseDur(getenv("JWT_TTL", "24h"), 24*time.Hour),
		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       atoi(getenv("REDIS_DB", "0")),
		TripCacheTTL:  parseDur(getenv("TRIP_CACHE_TTL", "5m"), 5*time.Minute),
		RabbitMQURL:   getenv("RABBITMQ_URL", ""),
		CORSOrigins:   defaultOrigins,
	}

	if env.DBDSN == "" {
		env.DBDSN = fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&clientFoundRows=true&timeout=5s&readTimeout=30s&writeTimeout=30s",
			getenv("DB_USER", "root"),
			getenv("DB_PASS", ""),
			getenv("DB_HOST", "127.0.0.1:3306"),
			getenv("DB_NAME", "travel_agency"),
		)
	}

	if raw := getenv("CORS_ALLOWED_ORIGINS", ""); raw != "" {
		origins := []string{}
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		env.CORSOrigins = origins
	}

	return env
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseDur(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
