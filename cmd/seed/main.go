package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

const EnvDatabaseURL = "DATABASE_URL"

func main() {
	var (
		dsn  = flag.String("dsn", "", "Database connection string")
		all  = flag.Bool("all", false, "Run all seeders")
		demo = flag.Bool("demo", false, "Seed demo workspace data")
		list = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	godotenv.Load()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseURL)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseURL)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()

	switch {
	case *all:
		if err := runAllSeeders(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *demo:
		if err := runSeeder(ctx, db, "demo"); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("demo workspace seeded successfully")

	default:
		fmt.Println("usage: seed -dsn <connection-string> [-all|-demo] [-list]")
		flag.PrintDefaults()
	}
}
