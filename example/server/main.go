package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/zitadel/logging"

	"github.com/authhive/ciba/example/server/exampleop"
	"github.com/authhive/ciba/example/server/storage"
)

func main() {
	// load .env when present, env vars win
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "9998"
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	}))

	store := storage.NewStorage(
		storage.NewUserStore(),
		storage.BackchannelClient(
			"web",
			"Example Web Client",
			[]string{"openid", "profile", "email"},
			[]string{"urn:example:api"},
		),
	)

	router := exampleop.SetupServer(store, logger)

	logging.Log("SERVER-start").Infof("listening on http://localhost:%s/", port)
	err := http.ListenAndServe(":"+port, router)
	logging.Log("SERVER-stop").OnError(err).Fatal("server terminated")
}
