// mockschool runs the in-memory mock of the school service for local
// development of the sync client. Seeded credentials are logged at startup.
package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"github.com/edusync/schoolclient/internal/infrastructure/config"
	"github.com/edusync/schoolclient/internal/mockapi"
	"github.com/edusync/schoolclient/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	srv := mockapi.New(cfg.Mock.JWTSecret, log)

	log.Info().
		Str("port", cfg.Mock.Port).
		Str("professor", mockapi.SeedProfessorEmail).
		Str("student", mockapi.SeedStudentEmail).
		Str("password", mockapi.SeedPassword).
		Msg("mock school service listening")

	if err := http.ListenAndServe(":"+cfg.Mock.Port, srv.Handler()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
