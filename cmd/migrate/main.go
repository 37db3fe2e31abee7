package main

import (
	"bloglist/internal/config" // Custom import path (Config)
	"bloglist/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Run schema migration
}
