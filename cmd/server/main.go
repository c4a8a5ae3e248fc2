package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"thesis-portal/internal/auth"
	"thesis-portal/internal/config"
	"thesis-portal/internal/database"
	"thesis-portal/internal/pages"
	"thesis-portal/internal/server"
)

func main() {
	cfg := config.Load()

	table := pages.Default()
	if err := table.Validate(); err != nil {
		log.Fatalf("invalid page table: %v", err)
	}

	db := database.Init(cfg.DBDSN)

	sessionRepo := database.NewSessionRepo(db)
	if n, err := sessionRepo.DeleteExpired(context.Background(), time.Now().UTC()); err != nil {
		log.Printf("failed to purge expired sessions: %v", err)
	} else if n > 0 {
		log.Printf("purged %d expired sessions", n)
	}

	svc := auth.NewService(database.NewUserRepo(db), sessionRepo, cfg.SessionTTL)

	log.Printf("auth mode: %s", cfg.AuthMode)
	if cfg.AuthMode == config.AuthModeStub {
		log.Printf("stub role: %s", cfg.StubRole)
	}

	r, err := server.NewRouter(cfg, server.Options{
		Pages:    table,
		Resolver: server.NewResolver(cfg, svc),
		Auth:     svc,
	})
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
