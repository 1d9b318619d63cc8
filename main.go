package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"carhub/internal/browse"
	"carhub/internal/catalog"
	"carhub/internal/config"
	"carhub/internal/domain"
	"carhub/internal/eventbus"
	"carhub/internal/logging"
	"carhub/internal/ui"
)

// filterFlags are the command line overrides for the initial filters
type filterFlags struct {
	manufacturer string
	model        string
	fuel         string
	year         int
	limit        int
}

func (f filterFlags) set() bool {
	return f.manufacturer != "" || f.model != "" || f.fuel != "" || f.year != 0 || f.limit != 0
}

func main() {
	var (
		configPath string
		printOnly  bool
		overrides  filterFlags
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.BoolVar(&printOnly, "print", false, "Print the first page of results and exit")
	flag.StringVar(&overrides.manufacturer, "make", "", "Initial manufacturer filter")
	flag.StringVar(&overrides.model, "model", "", "Initial model filter")
	flag.StringVar(&overrides.fuel, "fuel", "", "Initial fuel filter (gas, electricity)")
	flag.IntVar(&overrides.year, "year", 0, "Initial year filter")
	flag.IntVar(&overrides.limit, "limit", 0, "Initial number of cars to request")
	flag.Parse()

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, created, err := loadOrCreateConfig(configSvc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file
	logger, logCloser, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		logger = logging.Discard()
	} else {
		defer logCloser.Close()
	}
	if created {
		logger.Info("created default config", slog.String("path", configSvc.Path()))
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New(logger)
	defer bus.Close()
	subscribeDiagnostics(bus, logger)

	client := catalog.NewClient(catalog.Options{
		BaseURL:         cfg.API.BaseURL,
		Host:            cfg.API.Host,
		APIKey:          cfg.API.Key,
		Timeout:         cfg.API.Timeout.Duration,
		BreakerFailures: cfg.API.BreakerFailures,
		BreakerCooldown: cfg.API.BreakerCooldown.Duration,
		Logger:          logger,
	})
	ctrl := browse.New(browseOptions(cfg, overrides, logger)...)

	if printOnly {
		if err := printListing(ctx, os.Stdout, ctrl, client); err != nil {
			fmt.Fprintf(os.Stderr, "Error printing listing: %v\n", err)
			os.Exit(1)
		}
		return
	}

	uiModel := ui.NewModel(ctx, bus, ctrl, client, logger)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	logger.Info("starting UI")
	if _, err := p.Run(); err != nil {
		logger.Error("error running program", slog.Any("error", err))
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	logger.Info("UI exited normally")
}

// loadOrCreateConfig loads the config, writing the defaults first when the
// file does not exist yet
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, bool, error) {
	path := configSvc.Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Defaults only, so env overrides such as the API key never land on disk
		if err := configSvc.SaveToPath(config.DefaultConfig(), path); err != nil {
			// Not fatal, the defaults are still usable
			cfg, loadErr := configSvc.Load()
			return cfg, false, loadErr
		}
		cfg, err := configSvc.Load()
		return cfg, true, err
	}

	cfg, err := configSvc.Load()
	return cfg, false, err
}

// browseOptions maps the config and flag overrides onto controller options
func browseOptions(cfg *config.Config, overrides filterFlags, logger *slog.Logger) []browse.Option {
	defaults := browse.Defaults{
		Manufacturer: cfg.Browse.DefaultManufacturer,
		Year:         cfg.Browse.DefaultYear,
		PageSize:     cfg.Browse.PageSize,
	}

	policy := browse.LastResolvedWins
	if cfg.Browse.StalePolicy == config.PolicyLastIssued {
		policy = browse.LastIssuedWins
	}

	opts := []browse.Option{
		browse.WithDefaults(defaults),
		browse.WithStalePolicy(policy),
		browse.WithLogger(logger),
	}

	if overrides.set() {
		f := domain.Filters{
			Manufacturer: overrides.manufacturer,
			Model:        overrides.model,
			Fuel:         overrides.fuel,
			Year:         defaults.Year,
			Limit:        defaults.PageSize,
		}
		if overrides.year != 0 {
			f.Year = overrides.year
		}
		if overrides.limit > 0 {
			f.Limit = overrides.limit
		}
		opts = append(opts, browse.WithFilters(f))
	}
	return opts
}

// subscribeDiagnostics logs every fetch lifecycle event
func subscribeDiagnostics(bus eventbus.EventBus, logger *slog.Logger) {
	bus.Subscribe(eventbus.EventFiltersChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FiltersChangedEvent); ok {
			logger.Debug("filters changed", slog.Any("filters", event.Filters))
		}
	})
	bus.Subscribe(eventbus.EventFetchIssued, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FetchIssuedEvent); ok {
			logger.Info("fetch issued",
				slog.Uint64("seq", event.Seq),
				slog.Any("request", event.Request),
			)
		}
	})
	bus.Subscribe(eventbus.EventFetchCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FetchCompletedEvent); ok {
			logger.Info("fetch completed",
				slog.Uint64("seq", event.Seq),
				slog.Int("count", event.Count),
				slog.Bool("applied", event.Applied),
				slog.String("message", event.Message),
			)
		}
	})
	bus.Subscribe(eventbus.EventFetchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FetchFailedEvent); ok {
			logger.Error("fetch failed",
				slog.Uint64("seq", event.Seq),
				slog.Any("request", event.Request),
				slog.Any("error", event.Err),
			)
		}
	})
}
