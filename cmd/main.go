package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"vitre/backend/internal/api/handler"
	"vitre/backend/internal/lifecycle"
	"vitre/backend/internal/notifier"
	"vitre/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func setupStore() storage.Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	db := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid REDIS_DB %q: %v", raw, err)
		}
		db = parsed
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}
	log.Println("Redis connection established.")

	return storage.NewService(storage.NewRedisKV(rdb), os.Getenv("ROOMS_KEY"), os.Getenv("NOTIFS_KEY"))
}

func main() {
	log.Println("Starting Vitre Manager backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	store := setupStore()

	engine := lifecycle.NewEngine(store, time.Now)
	engine.LoadInitial(context.Background())

	hub := notifier.NewHub()
	engine.SetBroadcaster(hub)
	go hub.Run()

	r := gin.Default()
	h := handler.NewHandler(engine, hub)
	h.RegisterRoutes(r)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:           addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
