package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"dilivry/cmd"
	httpin "dilivry/internal/adapters/in/http"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		StoreBackend:   goDotEnvVariable("STORE_BACKEND"),
		RedisAddr:      goDotEnvVariable("REDIS_ADDR"),
		RedisDB:        goDotEnvIntVariable("REDIS_DB"),
		RedisKeyPrefix: goDotEnvVariable("REDIS_KEY_PREFIX"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return v
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := httpin.NewEcho()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
