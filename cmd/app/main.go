package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"freight/cmd"
	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres/fleetrepo"
	"freight/internal/adapters/out/postgres/historyrepo"
	"freight/internal/adapters/out/postgres/profilerepo"
	"freight/internal/adapters/out/postgres/quoterepo"
	"freight/internal/adapters/out/postgres/scoringrepo"
	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/jobs"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateExpireQuotesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		GeocoderBaseURL: goDotEnvVariable("GEOCODER_BASE_URL"),
		GeocoderAPIKey:  goDotEnvVariable("GEOCODER_API_KEY"),
		PaymentsBaseURL: goDotEnvVariable("PAYMENTS_BASE_URL"),
		PaymentsAPIKey:  goDotEnvVariable("PAYMENTS_API_KEY"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.StopDTO{},
		&quoterepo.QuoteDTO{},
		&profilerepo.ProfileDTO{},
		&fleetrepo.VehicleDTO{},
		&scoringrepo.RatingDTO{},
		&historyrepo.StatusChangeDTO{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(httpin.ServerDeps{
		CreateShipment:  app.CreateCreateShipmentCommandHandler(),
		SubmitQuote:     app.CreateSubmitQuoteCommandHandler(),
		AcceptQuote:     app.CreateAcceptQuoteCommandHandler(),
		RejectQuote:     app.CreateRejectQuoteCommandHandler(),
		StartTrip:       app.CreateStartTripCommandHandler(),
		CompleteTrip:    app.CreateCompleteTripCommandHandler(),
		CancelShipment:  app.CreateCancelShipmentCommandHandler(),
		RegisterProfile: app.CreateRegisterProfileCommandHandler(),
		AwaitProfile:    app.CreateAwaitProfileCommandHandler(),
		AddVehicle:      app.CreateAddVehicleCommandHandler(),
		RateCarrier:     app.CreateRateCarrierCommandHandler(),

		GetOpenShipments:     app.CreateGetOpenShipmentsQueryHandler(),
		GetShipmentsByOwner:  app.CreateGetShipmentsByOwnerQueryHandler(),
		GetQuotesForShipment: app.CreateGetQuotesForShipmentQueryHandler(),
		GetQuotesByCarrier:   app.CreateGetQuotesByCarrierQueryHandler(),
		GetShipmentHistory:   app.CreateGetShipmentHistoryQueryHandler(),
		GetFleet:             app.CreateGetFleetQueryHandler(),
		GetCarrierScore:      app.CreateGetCarrierScoreQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
