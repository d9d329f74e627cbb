// mock-api runs the in-memory development backend so the CLI and the browse
// view work without the production API. All data is lost on exit.
package main

import (
	"fmt"
	"log"

	"mindfulreader/internal/config"
	"mindfulreader/internal/mockapi"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	server := mockapi.New(mockapi.Options{
		JWTSecret: cfg.JWTSecret,
		Seed:      true,
	})

	addr := fmt.Sprintf(":%d", cfg.MockAPIPort)
	log.Printf("mock-api listening on %s (admin: %s / %s)", addr, mockapi.SeedAdminEmail, mockapi.SeedAdminPassword)
	if err := server.Run(addr); err != nil {
		log.Fatalf("mock-api: %v", err)
	}
}
