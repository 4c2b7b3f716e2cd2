// Package main provides the CLI entrypoint for the job portal aggregation gateway.
// It wires subcommands (serve, view, jwt), loads configuration, and initializes logging.
package main

import (
	"aggregator/internal/composer"
	"aggregator/internal/config"
	"aggregator/pkg/backend/rest"
	"aggregator/pkg/logger"
	"context"
	"flag"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// restOptions maps the config of one backend service to client options.
func restOptions(svc config.Service) rest.Options {
	return rest.Options{
		BaseURL:      svc.BaseURL,
		Timeout:      svc.Timeout,
		MaxIdleConns: svc.MaxIdleConns,
	}
}

// getBackends creates the REST clients of the three backend services.
func getBackends(cfg *config.Config) composer.Deps {
	apps := restOptions(cfg.Services.Application)
	catalog := restOptions(cfg.Services.Catalog)
	reviews := restOptions(cfg.Services.Review)

	return composer.Deps{
		Applications: rest.NewApplicationClient(rest.NewHTTPClient(apps), apps.BaseURL),
		Catalog:      rest.NewCatalogClient(rest.NewHTTPClient(catalog), catalog.BaseURL),
		Reviews:      rest.NewReviewClient(rest.NewHTTPClient(reviews), reviews.BaseURL),
	}
}

// getComposer wires the backend clients into a Composer. mp may be nil, in
// which case the global meter provider is used.
func getComposer(ctx context.Context, cfg *config.Config, deps composer.Deps, mp metric.MeterProvider) composer.Composer {
	opts := composer.NewOptions(cfg)
	opts.MeterProvider = mp

	c, err := composer.New(deps, opts)
	if err != nil {
		logger.Fatal(ctx, "could not create composer", zap.Error(err))
	}

	return c
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "aggregator",
		Short: "Composes job portal views out of the application, catalog and review services",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not set up logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		viewCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
