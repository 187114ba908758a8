package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/joho/godotenv"

	"github.com/worasetx8/shonraApi-sub001/config"
	"github.com/worasetx8/shonraApi-sub001/database"
)

func main() {
	log.SetHandler(text.New(os.Stdout))

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "database setup failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Environment variables already set win over the dotfile.
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if n := db.ApplySchema(); n > 0 {
		log.Warnf("schema phase finished with %d failed steps", n)
	}
	if n := db.ApplySeed(); n > 0 {
		log.Warnf("seed phase finished with %d failed steps", n)
	}

	if err := db.Verify(); err != nil {
		return err
	}

	log.Info("Database setup complete")
	log.Infof("Next: start the admin API against %s and sign in with the seeded admin account", cfg.DBName)
	return nil
}
