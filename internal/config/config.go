package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"finsight"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	// Source selects where transactions come from: sheets, csv or demo.
	Source struct {
		Kind string `envconfig:"SOURCE" default:"demo"`
	}

	Sheets struct {
		SpreadsheetID string `envconfig:"SHEETS_SPREADSHEET_ID"`
		APIKey        string `envconfig:"SHEETS_API_KEY"`
		ReadRange     string `envconfig:"SHEETS_RANGE" default:"Transactions"`
	}

	CSV struct {
		Path string `envconfig:"CSV_PATH"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
