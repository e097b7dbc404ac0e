// portalctl is a small operator CLI that works the grievance queue straight
// against the database, for when the dashboard is unreachable.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/storage"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db)

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "list":
		listGrievances(storageSvc)
	case "respond":
		if len(os.Args) < 4 {
			fmt.Println("Usage: portalctl respond <grievance_id> <response text>")
			os.Exit(1)
		}
		id := parseID(os.Args[2])
		response := strings.Join(os.Args[3:], " ")
		if err := storageSvc.SetResponse(id, response); err != nil {
			log.Fatalf("Error responding to grievance: %v", err)
		}
		fmt.Printf("Response saved for grievance %d.\n", id)
	case "resolve":
		if len(os.Args) != 3 {
			fmt.Println("Usage: portalctl resolve <grievance_id>")
			os.Exit(1)
		}
		id := parseID(os.Args[2])
		if err := storageSvc.MarkResolved(id); err != nil {
			log.Fatalf("Error resolving grievance: %v", err)
		}
		fmt.Printf("Grievance %d has been resolved.\n", id)
	default:
		usage()
	}
}

func listGrievances(s storage.Storage) {
	grievances, err := s.ListGrievances()
	if err != nil {
		log.Fatalf("Error listing grievances: %v", err)
	}

	for _, g := range grievances {
		fmt.Printf("#%d [%s] %s (priority: %s, submitted: %s)\n",
			g.ID, g.Status, g.Title, g.Priority, g.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func parseID(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fmt.Println("Invalid grievance ID. Please provide an integer.")
		os.Exit(1)
	}
	return uint(id)
}

func usage() {
	fmt.Println("Usage: portalctl <list|respond|resolve> [args]")
	os.Exit(1)
}
