package di

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sandeepkv93/lost-and-found-backend/internal/config"
	"github.com/sandeepkv93/lost-and-found-backend/internal/domain"
	"github.com/sandeepkv93/lost-and-found-backend/internal/repository"
	"github.com/sandeepkv93/lost-and-found-backend/internal/service"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestProvideHTTPServer(t *testing.T) {
	cfg := &config.Config{HTTPPort: "9999"}
	srv := provideHTTPServer(cfg, nil)
	if srv.Addr != ":9999" {
		t.Fatalf("unexpected addr: %s", srv.Addr)
	}
	if srv.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("unexpected read header timeout: %v", srv.ReadHeaderTimeout)
	}
}

func TestProvideRouterDependencies(t *testing.T) {
	cfg := &config.Config{CORSAllowedOrigins: []string{"http://localhost:5173"}, AuthRateLimitPerMin: 10, APIRateLimitPerMin: 100, OTELTracingEnabled: true}
	jwt := provideJWTManager(&config.Config{JWTIssuer: "iss", JWTSecret: "abcdefghijklmnopqrstuvwxyz123456", JWTTTL: time.Hour})
	dep := provideRouterDependencies(nil, nil, nil, jwt, nil, nil, nil, cfg)
	if dep.AuthRateLimitRPM != 10 || dep.APIRateLimitRPM != 100 {
		t.Fatalf("unexpected rate limits: %+v", dep)
	}
	if !dep.EnableOTelHTTP {
		t.Fatal("expected otel http enabled")
	}
	if dep.TokenParser == nil {
		t.Fatal("expected token parser")
	}
	if len(dep.CORSOrigins) != 1 || dep.CORSOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected cors origins: %+v", dep.CORSOrigins)
	}
}

func TestProvideJWTManagerUsesConfiguredTTL(t *testing.T) {
	jwt := provideJWTManager(&config.Config{JWTIssuer: "iss", JWTSecret: "abcdefghijklmnopqrstuvwxyz123456", JWTTTL: 2 * time.Hour})
	if jwt.TTL() != 2*time.Hour {
		t.Fatalf("expected 2h ttl, got %v", jwt.TTL())
	}
	token, _, err := jwt.SignAccessToken(7, "a@b.com")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := jwt.ParseAccessToken(token)
	if err != nil || claims.UserID != 7 {
		t.Fatalf("unexpected parse result: %+v %v", claims, err)
	}
}

func TestProvidePasswordHasherHonoursCost(t *testing.T) {
	h := providePasswordHasher(&config.Config{AuthBcryptCost: 10, AuthHashConcurrency: 2})
	if h.Cost() != 10 {
		t.Fatalf("expected cost 10, got %d", h.Cost())
	}
}

func TestLocalRateLimitersEnforceLimit(t *testing.T) {
	cfg := &config.Config{AuthRateLimitPerMin: 1, APIRateLimitPerMin: 2}
	limiters := map[string]func(http.Handler) http.Handler{
		"auth": provideAuthRateLimiter(cfg, nil),
		"api":  provideGlobalRateLimiter(cfg, nil),
	}
	limits := map[string]int{"auth": 1, "api": 2}

	for name, mw := range limiters {
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		for i := 0; i <= limits[name]; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			want := http.StatusOK
			if i == limits[name] {
				want = http.StatusTooManyRequests
			}
			if rr.Code != want {
				t.Fatalf("%s limiter request %d: expected %d, got %d", name, i+1, want, rr.Code)
			}
		}
	}
}

func TestRedisAuthRateLimiterUsesPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{RateLimitRedisEnabled: true, RateLimitRedisPrefix: "rl", AuthRateLimitPerMin: 1}
	h := provideAuthRateLimiter(cfg, client)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes %v", codes)
	}
	found := false
	for _, key := range mr.Keys() {
		if strings.HasPrefix(key, "rl:auth") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected redis keys under rl:auth, got %v", mr.Keys())
	}
}

func TestProvideRedisClientDisabled(t *testing.T) {
	if c := provideRedisClient(&config.Config{RateLimitRedisEnabled: false}, nil); c != nil {
		t.Fatal("expected nil client when redis is disabled")
	}
}

func TestDisabledStorageLeavesServiceWithoutStorage(t *testing.T) {
	storage, err := providePhotoStorage(&config.Config{StorageEnabled: false})
	if err != nil || storage != nil {
		t.Fatalf("expected nil storage, got %v %v", storage, err)
	}

	db := newTestDB(t)
	svc := provideLostItemService(repository.NewLostItemRepository(db), repository.NewOwnerRepository(db), storage, nil)
	_, err = svc.AttachPhoto(context.Background(), 1, bytes.NewReader([]byte("x")), 1)
	if !errors.Is(err, service.ErrStorageDisabled) {
		t.Fatalf("expected ErrStorageDisabled, got %v", err)
	}
}

func TestProvidePhotoStorageEnabled(t *testing.T) {
	storage, err := providePhotoStorage(&config.Config{
		StorageEnabled:   true,
		StorageEndpoint:  "localhost:9000",
		StorageAccessKey: "minioadmin",
		StorageSecretKey: "minioadmin",
		StorageBucket:    "lost-item-photos",
	})
	if err != nil || storage == nil {
		t.Fatalf("expected storage client, got %v %v", storage, err)
	}
}

func TestProvideReadinessProbeRunnerWithDatabaseOnly(t *testing.T) {
	db := newTestDB(t)
	runner := provideReadinessProbeRunner(&config.Config{ReadinessProbeTimeout: time.Second}, db, nil, nil)
	ready, results := runner.Ready(context.Background())
	if !ready {
		t.Fatalf("expected ready, got %+v", results)
	}
	if len(results) != 1 || results[0].Name != "db" {
		t.Fatalf("expected only the db check, got %+v", results)
	}
}

func TestProvideReadinessProbeRunnerReportsRedisOutage(t *testing.T) {
	db := newTestDB(t)
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	runner := provideReadinessProbeRunner(&config.Config{RateLimitRedisEnabled: true, ReadinessProbeTimeout: time.Second}, db, client, nil)
	ready, results := runner.Ready(context.Background())
	if ready {
		t.Fatalf("expected not ready, got %+v", results)
	}
}

func TestMigrationRunnerMigratesAndSeeds(t *testing.T) {
	db := newTestDB(t)
	runner := NewMigrationRunner(db)

	details, err := runner.Run(true)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected migrate and seed details, got %v", details)
	}
	var owners int64
	if err := db.Model(&domain.Owner{}).Count(&owners).Error; err != nil {
		t.Fatalf("count owners: %v", err)
	}
	if owners == 0 {
		t.Fatal("expected demo owners")
	}

	if _, err := runner.Run(true); err != nil {
		t.Fatalf("second run: %v", err)
	}
	var again int64
	db.Model(&domain.Owner{}).Count(&again)
	if again != owners {
		t.Fatalf("seed is not idempotent: %d then %d", owners, again)
	}
}
