package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/routemock/routemock/internal/analyzer"
	"github.com/routemock/routemock/internal/logger"
	"github.com/routemock/routemock/internal/server"
)

type Config struct {
	ProjectPath string `json:"project_path" yaml:"project_path"`
	ListenAddr  string `json:"listen_addr" yaml:"listen_addr"`
}

func main() {
	// cmd line flags
	var (
		configPath  = flag.String("config", "", "Path to configuration file (json or yaml)")
		projectPath = flag.String("project", ".", "Path to the TypeScript source tree")
		listenAddr  = flag.String("addr", "127.0.0.1:3000", "Address to serve the mock API on")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		help        = flag.Bool("h", false, "Show help")
	)
	flag.Parse()

	if *help {
		flag.PrintDefaults()
		return
	}

	level := log.InfoLevel
	if *debug {
		level = log.DebugLevel
	}
	logr := logger.NewStdOutLoggerWithLevel(level)

	var config Config

	if *configPath != "" {
		if err := loadConfig(*configPath, &config); err != nil {
			logr.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	} else {
		config = Config{
			ProjectPath: *projectPath,
			ListenAddr:  *listenAddr,
		}
	}

	// optional .env overrides
	_ = godotenv.Load()
	if v := os.Getenv("ROUTEMOCK_PROJECT"); v != "" {
		config.ProjectPath = v
	}
	if v := os.Getenv("ROUTEMOCK_ADDR"); v != "" {
		config.ListenAddr = v
	}

	if _, err := os.Stat(config.ProjectPath); os.IsNotExist(err) {
		logr.Error("project path does not exist", "path", config.ProjectPath)
		os.Exit(1)
	}

	projectAnalyzer := analyzer.New(config.ProjectPath, logr)
	catalog, err := projectAnalyzer.Analyze(context.Background())
	if err != nil {
		logr.Error("failed to analyze project", "error", err)
		os.Exit(1)
	}

	logr.Info("scan complete", "path", config.ProjectPath, "entities", len(catalog))
	for _, entity := range catalog {
		logr.Info("discovered entity", "route", entity.Route, "properties", len(entity.Properties))
	}

	srv := server.New(catalog, logr)
	if err := srv.Run(config.ListenAddr); err != nil {
		logr.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadConfig(configPath string, config *Config) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch filepath.Ext(configPath) {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format: %s (supported: json, yaml)", filepath.Ext(configPath))
	}

	if config.ListenAddr == "" {
		config.ListenAddr = "127.0.0.1:3000"
	}
	if config.ProjectPath == "" {
		config.ProjectPath = "."
	}

	return nil
}
