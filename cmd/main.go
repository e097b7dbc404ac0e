package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/api/handler"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/auth"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/config"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/models"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/notify"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/storage"
)

func setupDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// Creates the grievances table if absent; a no-op on every later start.
	if err := db.AutoMigrate(&models.Grievance{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database connection established, migrations complete.")
	return db
}

func main() {
	log.Println("Starting Grievance Portal...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db := setupDatabase(cfg)
	store := storage.NewStorageService(db)
	authSvc := auth.NewService(cfg)
	dispatcher := notify.NewDispatcher(cfg)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	h := handler.NewHandler(store, authSvc, dispatcher, cfg)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Listening on %s (env: %s)", cfg.ListenAddr, cfg.AppEnv)
	log.Fatal(server.ListenAndServe())
}
