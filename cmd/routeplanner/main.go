// Command routeplanner loads a road network and either prints one planned
// route or serves the planner over HTTP.
//
// Usage:
//
//	routeplanner -start "New York NY" -end "Los Angeles CA" -attractions "Liberty Bell,Hollywood Sign"
//	routeplanner -serve
//	routeplanner -export network.yaml
//	routeplanner -seed-db
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/katalvlaran/routeplanner/catalog"
	"github.com/katalvlaran/routeplanner/catalog/pgstore"
	"github.com/katalvlaran/routeplanner/config"
	"github.com/katalvlaran/routeplanner/metrics"
	"github.com/katalvlaran/routeplanner/planner"
	"github.com/katalvlaran/routeplanner/route"
	"github.com/katalvlaran/routeplanner/server"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	stopStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF00"))

	routeBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

func main() {
	configFile := flag.String("config", "", "Path to config file (default: routeplanner.yaml in ., ./config, /etc/routeplanner)")
	start := flag.String("start", "", "Starting city")
	end := flag.String("end", "", "Ending city")
	attractions := flag.String("attractions", "", "Comma-separated attractions to visit")
	serve := flag.Bool("serve", false, "Serve the planner over HTTP")
	export := flag.String("export", "", "Write the loaded network to this YAML file and exit")
	seedDB := flag.Bool("seed-db", false, "Save the loaded network to database.url and exit")
	flag.Parse()

	if err := run(*configFile, *start, *end, *attractions, *serve, *export, *seedDB); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(configFile, start, end, attractions string, serve bool, export string, seedDB bool) error {
	cfg, err := config.Load(nil, configFile)
	if err != nil {
		return err
	}

	logger, err := config.InitLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer config.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataset, err := loadDataset(ctx, cfg, logger)
	if err != nil {
		return err
	}

	switch {
	case export != "":
		return exportYAML(dataset, export, logger)
	case seedDB:
		return seedDatabase(ctx, cfg, dataset, logger)
	}

	g, err := dataset.BuildGraph()
	if err != nil {
		return err
	}

	var reg *metrics.Registry
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
	}

	opts := []planner.Option{
		planner.WithLogger(logger),
		planner.WithMetrics(reg),
		planner.WithCacheSize(cfg.Planner.CacheSize),
	}
	if cfg.Planner.Workers > 0 {
		opts = append(opts, planner.WithWorkers(cfg.Planner.Workers))
	}
	p, err := planner.New(g, dataset.Attractions, opts...)
	if err != nil {
		return err
	}

	if serve {
		return server.NewServer(p, dataset.Attractions, reg, logger,
			server.WithAllowedOrigins(cfg.HTTP.AllowedOrigins...)).Start(ctx, cfg.HTTP.Addr)
	}

	if start == "" || end == "" {
		return errors.New("-start and -end are required unless -serve, -export or -seed-db is given")
	}

	var names []string
	if attractions != "" {
		names = strings.Split(attractions, ",")
	}
	r, err := p.PlanRoute(strings.TrimSpace(start), strings.TrimSpace(end), names)
	if err != nil {
		return err
	}

	fmt.Println(render(r))
	return nil
}

// loadDataset reads the network from the configured source.
func loadDataset(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*catalog.Dataset, error) {
	var (
		d   *catalog.Dataset
		err error
	)

	switch cfg.Data.Source {
	case config.SourceCSV:
		var attrPath, roadsPath string
		if attrPath, err = catalog.ResolvePath(cfg.Data.AttractionsFile, cfg.Data.SearchDirs); err != nil {
			return nil, err
		}
		if roadsPath, err = catalog.ResolvePath(cfg.Data.RoadsFile, cfg.Data.SearchDirs); err != nil {
			return nil, err
		}
		d, err = catalog.LoadCSV(attrPath, roadsPath)

	case config.SourceYAML:
		var path string
		if path, err = catalog.ResolvePath(cfg.Data.NetworkFile, cfg.Data.SearchDirs); err != nil {
			return nil, err
		}
		d, err = catalog.LoadYAML(path)

	case config.SourcePostgres:
		var store *pgstore.Store
		if store, err = pgstore.Open(ctx, cfg.Database.URL); err != nil {
			return nil, err
		}
		defer store.Close()

		if err = store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		d, err = store.LoadDataset(ctx)

	default:
		return nil, fmt.Errorf("%w: unknown data source %q", config.ErrInvalidConfig, cfg.Data.Source)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Road network loaded",
		zap.String("source", cfg.Data.Source),
		zap.Int("cities", len(d.Cities())),
		zap.Int("roads", len(d.Roads)),
		zap.Int("attractions", d.Attractions.Len()))

	return d, nil
}

func exportYAML(d *catalog.Dataset, path string, logger *zap.Logger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err = catalog.WriteYAML(f, d); err != nil {
		return err
	}
	logger.Info("Network exported", zap.String("file", path))

	return nil
}

func seedDatabase(ctx context.Context, cfg *config.Config, d *catalog.Dataset, logger *zap.Logger) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("%w: database.url is required for -seed-db", config.ErrInvalidConfig)
	}

	store, err := pgstore.Open(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := store.SaveDataset(ctx, d); err != nil {
		return err
	}
	logger.Info("Network saved to database", zap.Int("cities", len(d.Cities())))

	return nil
}

// render draws the route as a numbered list of stops in a box.
func render(r route.Route) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Route from %s to %s", r.First(), r.Last())))
	b.WriteString("\n\n")
	for i, city := range r.Cities {
		b.WriteString(stopStyle.Render(fmt.Sprintf("%2d. %s", i+1, city)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(totalStyle.Render(fmt.Sprintf("Total distance: %d miles", r.Distance)))

	return routeBoxStyle.Render(b.String())
}
