package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/config"
	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/server"
	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/simulation"
	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/store"
	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/constants"
	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/output"
	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// loadConfiguration loads the simulation configuration, falling back to the
// seeded defaults when the default config file is simply absent.
func loadConfiguration(path string) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(path)
	if err != nil {
		if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) && path == constants.DefaultConfigFile {
			return &config.Configuration{Simulation: config.DefaultSimulationConfig()}, nil
		}
		return nil, err
	}
	return conf, nil
}

func loadInput(path string) (simulation.Input, error) {
	var input simulation.Input
	data, err := os.ReadFile(path)
	if err != nil {
		return input, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &input); err != nil {
		return input, fmt.Errorf("failed to parse input file %s: %w", path, err)
	}
	return input, nil
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to simulation configuration file")
	inputLocation := flag.String("input", constants.DefaultInputFile, "path to simulation input file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "run the HTTP simulation API instead of a one-shot calculation")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flag.Parse()

	conf, err := loadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *serve {
		runServer(logger, conf.Simulation, *serverConfigLocation)
		return
	}

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	input, err := loadInput(*inputLocation)
	if err != nil {
		logger.Fatal("failed to load simulation input",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	result, err := simulation.Calculate(logger, input, conf.Simulation)
	if err != nil {
		logger.Fatal("failed to compute simulation",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, result)
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, result)
	}
}

func runServer(logger *zap.Logger, simulationCfg config.SimulationConfig, serverConfigLocation string) {
	serverCfg, err := server.LoadConfig(serverConfigLocation)
	if err != nil {
		logger.Fatal("failed to load server configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	var repo store.SimulationRepository
	if serverCfg.DatabaseURL != "" {
		pg, pgErr := store.NewPostgresRepository(serverCfg.DatabaseURL)
		if pgErr != nil {
			logger.Fatal("failed to open simulation database",
				zap.String("op", "main"),
				zap.Error(pgErr),
			)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if schemaErr := pg.EnsureSchema(ctx); schemaErr != nil {
			logger.Fatal("failed to prepare simulation database schema",
				zap.String("op", "main"),
				zap.Error(schemaErr),
			)
		}
		defer func() {
			_ = pg.Close()
		}()
		repo = pg
	} else {
		repo = store.NewMemoryRepository()
	}

	var cache store.ResultCache
	if serverCfg.CacheAddress != "" {
		cache = store.NewRedisCache(serverCfg.CacheAddress, time.Hour)
	}

	handler := server.NewHandler(logger, simulationCfg, repo, cache, serverCfg.RequestSizeBytes(), version)

	logger.Info("starting simulation API server",
		zap.String("op", "main"),
		zap.String("address", serverCfg.Address),
	)
	if err := http.ListenAndServe(serverCfg.Address, handler); err != nil {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
