//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"

	"larek/internal/config"

	"github.com/jackc/pgx/v5"
)

// Checks that the database configured through DB_* variables is reachable.
// Run with: go run scripts/test_db_connection.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		fmt.Fprintf(os.Stderr, "DB_DRIVER is %s, nothing to check\n", cfg.Database.Driver)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	err = conn.QueryRow(ctx, "SELECT current_database()").Scan(&dbName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	var products int
	if err := conn.QueryRow(ctx, "SELECT count(*) FROM products").Scan(&products); err != nil {
		fmt.Printf("Connected to %s; products table not created yet\n", dbName)
		return
	}

	fmt.Printf("Successfully connected to database: %s (%d products)\n", dbName, products)
}
