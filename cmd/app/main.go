package main

import (
	"fmt"
	"log/slog"
	"os"

	"tableside/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		TokenSecret:               goDotEnvVariable("TOKEN_SECRET"),
		TokenTTL:                  goDotEnvVariable("TOKEN_TTL"),
		RestaurantID:              goDotEnvVariable("RESTAURANT_ID"),
		RestaurantName:            goDotEnvVariable("RESTAURANT_NAME"),
		RestaurantTables:          goDotEnvVariable("RESTAURANT_TABLES"),
		RestaurantBackgroundColor: goDotEnvVariable("RESTAURANT_BACKGROUND_COLOR"),
		RestaurantTextColor:       goDotEnvVariable("RESTAURANT_TEXT_COLOR"),
		RestaurantCustomText:      goDotEnvVariable("RESTAURANT_CUSTOM_TEXT"),
		EscalationThreshold:       goDotEnvVariable("ESCALATION_THRESHOLD"),
		EscalationSchedule:        goDotEnvVariable("ESCALATION_SCHEDULE"),
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

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
