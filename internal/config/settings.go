package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Settings are machine-local options read from ~/.weekender/config.toml.
// Every field has a usable default so the file is optional.
type Settings struct {
	Browser struct {
		ChromePath string `toml:"chrome_path"`
		Headless   *bool  `toml:"headless"`
	} `toml:"browser"`
	Redis struct {
		Addr string `toml:"addr"`
	} `toml:"redis"`
	Google struct {
		CredentialsFile string `toml:"credentials_file"`
		TokenFile       string `toml:"token_file"`
		DriveFolderID   string `toml:"drive_folder_id"`
	} `toml:"google"`
}

// HeadlessEnabled reports whether the browser should run headless.
// Defaults to true when the setting is absent.
func (s Settings) HeadlessEnabled() bool {
	if s.Browser.Headless == nil {
		return true
	}
	return *s.Browser.Headless
}

// weekenderHome returns the settings directory. It checks the WEEKENDER_HOME
// environment variable first, then falls back to ~/.weekender
func weekenderHome() (string, error) {
	if home := os.Getenv("WEEKENDER_HOME"); home != "" {
		return home, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}

	return filepath.Join(usr.HomeDir, ".weekender"), nil
}

// LoadSettings reads the settings file if it exists.
// Returns: (settings, fileExists, err)
func LoadSettings() (Settings, bool, error) {
	var settings Settings

	home, err := weekenderHome()
	if err != nil {
		return settings, false, err
	}

	configPath := filepath.Join(home, "config.toml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return settings, false, nil
	}

	if _, err := toml.DecodeFile(configPath, &settings); err != nil {
		return settings, true, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	return settings, true, nil
}

// LoadEnv loads a .env file from the working directory when present.
// Secrets like GEMINI_API_KEY live there rather than in the settings file.
func LoadEnv() {
	_ = godotenv.Load()
}
