package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Admin struct {
		// Argon2id hash of the dashboard password, e.g.
		// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
		PasswordHash string `yaml:"password_hash"`
		JWTSecret    string `yaml:"jwt_secret"`
	} `yaml:"admin"`
	Store struct {
		Type       string `yaml:"type"` // "sheets", "sqlite" or "memory"
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"store"`
	Sheets struct {
		CredentialsFile string `yaml:"credentials_file"`
		SpreadsheetID   string `yaml:"spreadsheet_id"`
		SheetName       string `yaml:"sheet_name"`
	} `yaml:"sheets"`
	Report struct {
		BannerPath string `yaml:"banner_path"`
	} `yaml:"report"`
	Session struct {
		TTLMinutes int `yaml:"ttl_minutes"`
	} `yaml:"session"`
}

// LoadConfig reads configuration from the specified YAML file and applies
// defaults for anything left unset.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	// Set defaults
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Store.Type == "" {
		config.Store.Type = "sheets"
	}
	if config.Store.SQLitePath == "" {
		config.Store.SQLitePath = "./data/leads.db"
	}
	if config.Sheets.SheetName == "" {
		config.Sheets.SheetName = "Leads"
	}
	if config.Session.TTLMinutes == 0 {
		config.Session.TTLMinutes = 30
	}

	// Secrets may reference environment variables
	config.Admin.PasswordHash = os.ExpandEnv(config.Admin.PasswordHash)
	config.Admin.JWTSecret = os.ExpandEnv(config.Admin.JWTSecret)
	config.Sheets.CredentialsFile = os.ExpandEnv(config.Sheets.CredentialsFile)

	return config, nil
}
