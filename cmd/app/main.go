package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"store/cmd"
	httpin "store/internal/adapters/in/http"
	"store/internal/adapters/out/postgres/invoicerepo"
	"store/internal/adapters/out/postgres/itemrepo"
	"store/internal/adapters/out/postgres/personrepo"
	"store/internal/jobs"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateGetUnshippedInvoicesQueryHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError maps unique violations to gorm.ErrDuplicatedKey, which
	// the invoice repository relies on for cart uniqueness.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&personrepo.PersonDTO{},
		&personrepo.AddressDTO{},
		&itemrepo.ItemDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.LineItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateAddLineItemCommandHandler(),
		app.CreateUpdateLineItemCommandHandler(),
		app.CreateDeleteLineItemCommandHandler(),
		app.CreateUpdateInvoiceCommandHandler(),
		app.CreateDeleteInvoiceCommandHandler(),
		app.CreateMarkInvoicePaidCommandHandler(),
		app.CreateMarkInvoiceShippedCommandHandler(),
		app.CreateGetItemsQueryHandler(),
		app.CreateGetInvoicesQueryHandler(),
		app.CreateGetInvoicesForPersonQueryHandler(),
		app.CreateGetInvoiceQueryHandler(),
		app.CreateGetCartQueryHandler(),
		app.CreateGetUnshippedInvoicesQueryHandler(),
		app.CreateGetAddressesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
