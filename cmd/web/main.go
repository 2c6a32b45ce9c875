package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/de-tools/care-atlas/pkg/models/store"
	"github.com/de-tools/care-atlas/pkg/server"
	"github.com/de-tools/care-atlas/pkg/services/catalog"
	"github.com/de-tools/care-atlas/pkg/services/estimate"
	"github.com/de-tools/care-atlas/pkg/services/profile"
	"github.com/de-tools/care-atlas/pkg/services/region"
	"github.com/de-tools/care-atlas/pkg/store/duckdb"
	breakdownstore "github.com/de-tools/care-atlas/pkg/store/duckdb/breakdown"
	profilestore "github.com/de-tools/care-atlas/pkg/store/duckdb/profile"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	catalogPath string
	dbPath      string
	seedDemo    bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Care Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "",
		"Path to a catalog override file (built-in tables are used when omitted)")
	rootCmd.Flags().StringVar(&dbPath, "db", "care-atlas.db", "Path to the DuckDB database file")
	rootCmd.Flags().BoolVar(&seedDemo, "seed", false, "Seed demo patient profiles at startup")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := catalog.LoadConfig(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog config: %w", err)
	}

	pricingCatalog, err := catalog.NewPricingFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to build pricing catalog: %w", err)
	}
	policies, err := catalog.NewPoliciesFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to build policy catalog: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	breakdowns, err := breakdownstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create breakdown store: %w", err)
	}
	profiles, err := profilestore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create profile store: %w", err)
	}

	if seedDemo {
		if err := profiles.Seed(ctx, demoProfiles()); err != nil {
			return fmt.Errorf("failed to seed demo profiles: %w", err)
		}
		logger.Info().Msg("demo patient profiles seeded")
	}

	calculator := estimate.NewCalculator(
		pricingCatalog,
		policies,
		region.NewResolverWithTable(cfg.ZipRegionTable()),
	)
	estimates := estimate.NewService(calculator, profile.NewExplorer(profiles), breakdowns)

	if catalogPath != "" {
		logger.Info().Msgf("Catalog overrides at `%s` successfully loaded.", catalogPath)
	}
	logger.Info().Msgf("Pricing %d procedures across %d insurance providers.",
		len(pricingCatalog.Procedures()), len(policies.Providers()))

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Estimates: estimates,
			Pricing:   pricingCatalog,
			Policies:  policies,
			Logger:    logger,
		},
	})

	return api.Start()
}

func demoProfiles() []store.ProfileRecord {
	return []store.ProfileRecord{
		{PatientID: "patient-001", ZipCode: "90210", Provider: "None"},
		{PatientID: "patient-002", ZipCode: "90210", Provider: "Blue Cross Blue Shield"},
		{PatientID: "patient-003", ZipCode: "75201", Provider: "Blue Cross Blue Shield"},
		{PatientID: "patient-004", ZipCode: "10001", Provider: "Aetna"},
		{PatientID: "patient-005", ZipCode: "44101", Provider: ""},
	}
}
