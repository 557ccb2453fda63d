package config

import (
	"strings"
	"testing"
	"time"
)

func TestEnvFromDefaults(t *testing.T) {
	env := envFrom(func(string) string { return "" })

	if env.AppAddr != ":8080" {
		t.Fatalf("AppAddr = %q", env.AppAddr)
	}
	if env.JWTTTL != 24*time.Hour {
		t.Fatalf("JWTTTL = %v", env.JWTTTL)
	}
	if !strings.Contains(env.DBDSN, "@tcp(127.0.0.1:3306)/travel_agency?") {
		t.Fatalf("unexpected DSN %q", env.DBDSN)
	}
	if len(env.CORSOrigins) != len(defaultOrigins) {
		t.Fatalf("CORSOrigins = %v", env.CORSOrigins)
	}
}

func TestEnvFromOverrides(t *testing.T) {
	vals := map[string]string{
		"APP_ADDR":             ":9000",
		"DB_DSN":               "u:p@tcp(db:3306)/x",
		"TRIP_CACHE_TTL":       "30s",
		"JWT_TTL":              "garbage",
		"REDIS_DB":             "2",
		"CORS_ALLOWED_ORIGINS": "https://a.example, ,https://b.example",
	}
	env := envFrom(func(k string) string { return vals[k] })

	if env.AppAddr != ":9000" || env.DBDSN != "u:p@tcp(db:3306)/x" {
		t.Fatalf("overrides not applied: %+v", env)
	}
	if env.TripCacheTTL != 30*time.Second {
		t.Fatalf("TripCacheTTL = %v", env.TripCacheTTL)
	}
	if env.JWTTTL != 24*time.Hour {
		t.Fatalf("invalid JWT_TTL should fall back, got %v", env.JWTTTL)
	}
	if env.RedisDB != 2 {
		t.Fatalf("RedisDB = %d", env.RedisDB)
	}
	if len(env.CORSOrigins) != 2 || env.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("CORSOrigins = %v", env.CORSOrigins)
	}
}
