package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

func main() {
	cfg := config.Load()
	config.SetupLogging(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dict, source, err := store.LoadDictionary(ctx, cfg.DBPath, cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	var meta *store.Meta
	if cfg.DBPath != "" {
		if m, err := store.ReadMeta(ctx, cfg.DBPath); err == nil {
			meta = &m
		} else {
			log.Warn().Err(err).Str("db", cfg.DBPath).Msg("dictionary metadata unavailable")
		}
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, dict, httpserver.Options{
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.SessionTokenTTL,
		ClientOrigin:   cfg.ClientOrigin,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Source:         source,
		Meta:           meta,
	})
	go srv.Sweep(ctx, time.Minute, cfg.SessionTTL)

	log.Info().Str("port", cfg.Port).Str("source", source).Int("words", len(dict)).Msg("starting solver server")
	if err := srv.Run(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
