package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	adapthttp "hydration/internal/adapter/http"
	"hydration/internal/adapter/memory"
	"hydration/internal/adapter/postgres"
	"hydration/internal/app"
	"hydration/internal/config"
	"hydration/internal/domain"
	"hydration/internal/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	var (
		userRepo   domain.UserRepository
		intakeRepo domain.IntakeRepository
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		userRepo, intakeRepo = db, db
	} else {
		log.Warn("DATABASE_URL not set, using in-memory store")
		mem := memory.New()
		userRepo, intakeRepo = mem, mem
	}

	userSvc := app.NewUserService(userRepo)
	intakeSvc := app.NewIntakeService(userRepo, intakeRepo)
	progressSvc := app.NewProgressService(userRepo, intakeRepo)

	h := adapthttp.New(userSvc, intakeSvc, progressSvc, log).Handler(cfg.CORSAllowedOrigins)
	log.Infof("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
