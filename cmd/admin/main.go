// Command admin is a small maintenance tool for operating on the persisted
// state directly, without going through the running backend: inspecting the
// roster, seeding rooms and running the daily reset (e.g. from cron).
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"vitre/backend/internal/analysis"
	"vitre/backend/internal/models"
	"vitre/backend/internal/storage"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	store := storage.NewService(storage.NewRedisKV(rdb), os.Getenv("ROOMS_KEY"), os.Getenv("NOTIFS_KEY"))

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: list | add-room <number> [priority] | delete-room <id> | reset")
		os.Exit(1)
	}

	switch command := os.Args[1]; command {
	case "list":
		listRooms(ctx, store)
	case "add-room":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin add-room <number> [priority]")
			os.Exit(1)
		}
		priority := models.PriorityNormal
		if len(os.Args) > 3 {
			priority = models.Priority(os.Args[3])
			if !priority.Valid() {
				fmt.Println("Invalid priority. Use Normal, VIP or Urgent.")
				os.Exit(1)
			}
		}
		if err := addRoom(ctx, store, os.Args[2], priority); err != nil {
			log.Fatalf("Error adding room: %v", err)
		}
		fmt.Printf("Room %s added.\n", os.Args[2])
	case "delete-room":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin delete-room <id>")
			os.Exit(1)
		}
		if err := deleteRoom(ctx, store, os.Args[2]); err != nil {
			log.Fatalf("Error deleting room: %v", err)
		}
		fmt.Printf("Room %s deleted.\n", os.Args[2])
	case "reset":
		if err := store.ResetDailyData(ctx); err != nil {
			log.Fatalf("Error resetting daily data: %v", err)
		}
		fmt.Println("Daily data has been reset.")
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func listRooms(ctx context.Context, store storage.Store) {
	rooms := analysis.SortRooms(store.LoadRooms(ctx))
	if len(rooms) == 0 {
		fmt.Println("No rooms scheduled.")
		return
	}
	for _, r := range rooms {
		assigned := "-"
		if r.AssignedTo != nil {
			assigned = *r.AssignedTo
		}
		fmt.Printf("%s  %-6s  %-8s  %-12s  %s\n", r.ID, r.Number, r.Priority, r.Status, assigned)
	}
}

func addRoom(ctx context.Context, store storage.Store, number string, priority models.Priority) error {
	rooms := store.LoadRooms(ctx)
	rooms = append(rooms, models.Room{
		ID:       uuid.New().String(),
		Number:   number,
		Priority: priority,
		Status:   models.StatusNotCleaned,
	})
	return store.SaveRooms(ctx, rooms)
}

func deleteRoom(ctx context.Context, store storage.Store, id string) error {
	rooms := store.LoadRooms(ctx)
	kept := rooms[:0]
	for _, r := range rooms {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(rooms) {
		return fmt.Errorf("room %s not found", id)
	}
	return store.SaveRooms(ctx, kept)
}
