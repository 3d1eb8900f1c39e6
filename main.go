package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/history"
	"github.com/robalobadob/wordle-helper/internal/httpserver"
	"github.com/robalobadob/wordle-helper/internal/store"
	"github.com/robalobadob/wordle-helper/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	vocab, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", vocab.Len()).Str("checksum", vocab.Checksum()).Msg("vocabulary loaded")

	db, err := openDB(getEnv("DB_PATH", "./data/helper.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	hist := history.NewStore(db)
	if err := hist.Migrate(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	srv := httpserver.New(store.NewMemoryStore(), hist, vocab)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting wordle-helper")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
