package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
)

type application struct {
	config      *Config
	logger      *slog.Logger
	blogService *blogservice.BlogService
	limiter     *common.RateLimiter
}

func newApplication(cfg *Config, logger *slog.Logger, store blogservice.Store) *application {
	return &application{
		config:      cfg,
		logger:      logger,
		blogService: blogservice.NewBlogService(store),
		limiter:     common.NewRateLimiter(cfg.Limiter.RPS, cfg.Limiter.Burst, 3*time.Minute),
	}
}

func main() {
	configFile := flag.String("config", ".env", "path to the dotenv configuration file")
	flag.Parse()

	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(*configFile)
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connect the blog store
	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open the blog store", slog.String("driver", cfg.DB.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer releaseStore(logger, closeStore)

	app := newApplication(cfg, logger, store)

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		releaseStore(logger, closeStore)
		os.Exit(1)
	}
}
