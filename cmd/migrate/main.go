package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"siparis/adapters/postgres"
	"siparis/internal/migration"
	"siparis/models"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()

	databaseURL := flag.String("db", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL")
	seedEmail := flag.String("seed-user", "", "create a user with this email after migrating")
	seedRole := flag.String("role", "user", "role for the seeded user")
	flag.Parse()

	if *databaseURL == "" {
		log.Fatal("Usage: migrate -db <database_url> [-seed-user <email> -role admin|user]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", *databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	runner := migration.NewRunner()
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Schema migrated to version %s", runner.Version())

	if *seedEmail == "" {
		return
	}

	user := &models.User{
		Email:    *seedEmail,
		Username: *seedEmail,
		Role:     *seedRole,
		IsActive: true,
	}
	if err := postgres.NewUserRepository(db).CreateUser(ctx, user); err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}
	log.Printf("Seeded %s user %s (%s)", user.Role, user.Email, user.ID)
}
