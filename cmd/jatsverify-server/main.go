// jatsverify-server runs the validation HTTP API.
package main

import (
	"log/slog"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/taimoormohiuddin/jatsverify/pkg/server"
)

func main() {
	// .env is optional; missing file is not an error.
	_ = godotenv.Load()

	cfg := server.LoadConfig()
	srv := server.New(cfg, slog.Default())

	slog.Info("jatsverify api listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Router()); err != nil {
		slog.Error("server stopped", "error", err)
	}
}
