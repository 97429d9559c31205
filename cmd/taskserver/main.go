package main

import (
	"log"

	"tasktrack/internal/api"
	"tasktrack/internal/auth"
	"tasktrack/internal/config"
	"tasktrack/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer s.Close()

	r := api.NewRouter(s, auth.NewTokens(cfg.JWTSecret))

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
