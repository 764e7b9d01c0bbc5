package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/freshbasket/freshbasket-backend/internal/modules/auth"
	"github.com/freshbasket/freshbasket-backend/internal/modules/cart"
	"github.com/freshbasket/freshbasket-backend/internal/modules/catalog"
	"github.com/freshbasket/freshbasket-backend/internal/modules/order"
	"github.com/freshbasket/freshbasket-backend/internal/modules/profile"
	"github.com/freshbasket/freshbasket-backend/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	backend, err := newBackend()
	if err != nil {
		log.Fatal(err)
	}

	delay := apiDelay()
	jwtSecret := []byte(getenv("JWT_SECRET", "freshbasket-dev-secret"))

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	ctx := context.Background()

	// ── Catalog (static reference data) ─────────────────────
	catalogRepo := catalog.NewMemoryRepository()
	catalogService := catalog.NewService(catalogRepo, delay)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Auth ────────────────────────────────────────────────
	authStore := auth.NewStore(backend)
	if err := authStore.Load(ctx); err != nil {
		log.Fatal(err)
	}
	authService := auth.NewService(authStore, jwtSecret, delay)
	auth.NewHandler(authService, authStore).RegisterRoutes(router)

	// ── Stores behind auth ──────────────────────────────────
	cartStore := cart.NewStore(backend)
	orderStore := order.NewStore(backend)
	profileStore := profile.NewStore(backend)
	for _, load := range []func(context.Context) error{
		cartStore.Load, orderStore.Load, profileStore.Load,
	} {
		if err := load(ctx); err != nil {
			log.Fatal(err)
		}
	}
	orderService := order.NewService(orderStore, cartStore, delay)

	router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSecret))
		cart.NewHandler(cartStore, catalogRepo).RegisterRoutes(r)
		order.NewHandler(orderService).RegisterRoutes(r)
		profile.NewHandler(profileStore).RegisterRoutes(r)
	})

	// ── Start Server ────────────────────────────────────────
	port := getenv("APP_PORT", "8080")
	fmt.Printf("FreshBasket API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

// newBackend picks the store persistence backend from STORAGE_BACKEND.
func newBackend() (storage.Backend, error) {
	switch name := os.Getenv("STORAGE_BACKEND"); name {
	case "", "memory":
		return storage.NewMemory(), nil
	case "file":
		return storage.NewFile(getenv("STORAGE_DIR", "./data"))
	case "postgres":
		db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			return nil, err
		}
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("postgres ping: %w", err)
		}
		return storage.NewPostgres(db)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: getenv("REDIS_ADDR", "localhost:6379")})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return storage.NewRedis(client), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", name)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func apiDelay() time.Duration {
	ms, err := strconv.Atoi(getenv("API_DELAY_MS", "800"))
	if err != nil || ms < 0 {
		ms = 800
	}
	return time.Duration(ms) * time.Millisecond
}
