package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"touchgrip/internal/config"
	"touchgrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a touchgrip config file")
	flag.StringVar(&configPath, "c", "", "Path to a touchgrip config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("touchgrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewService()
	cfg := loadOrCreateConfig(configSvc, configPath)

	// Create UI model
	uiModel := ui.NewModel(cfg)

	// Create Bubble Tea program with mouse capture; all motion is needed so
	// gestures keep tracking after the pointer leaves the surface.
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseAllMotion())
	uiModel.SetProgram(p)

	// Run the UI
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadOrCreateConfig loads config from the given path, or from the default
// location, creating a default file there on first run.
func loadOrCreateConfig(configSvc config.Service, path string) *config.Config {
	if path != "" {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			log.Printf("Failed to load config from %s: %v, using defaults", path, err)
			return config.DefaultConfig()
		}
		log.Printf("Loaded config from %s", path)
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v, using defaults", err)
		return config.DefaultConfig()
	}

	// Persist defaults on first run so there is a file to tune.
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}

	return cfg
}
