package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Backend
	APIBaseURL string `mapstructure:"api-base-url"`
	TokenPath  string `mapstructure:"token-path"`

	// Database paths
	SQLitePath string `mapstructure:"sqlite-path"`
	FSMDBPath  string `mapstructure:"fsm-db-path"`

	// Working directory for staged payloads and camera captures
	WorkDir string `mapstructure:"work-dir"`

	// Photo sources. MediaDir is the local library; the bucket settings
	// switch the library to remote evidence storage when set.
	MediaDir       string `mapstructure:"media-dir"`
	EvidenceBucket string `mapstructure:"evidence-bucket"`
	EvidenceRegion string `mapstructure:"evidence-region"`
	EvidencePrefix string `mapstructure:"evidence-prefix"`

	// Device helper commands. An empty camera-command marks the
	// environment as library-only.
	LocationCommand string `mapstructure:"location-command"`
	CameraCommand   string `mapstructure:"camera-command"`

	// Validation rules
	MinIdentifierLen    int   `mapstructure:"min-identifier-len"`
	AllowZeroCoordinate bool  `mapstructure:"allow-zero-coordinate"`
	MaxPhotoSize        int64 `mapstructure:"max-photo-size"`
}

// Load reads configuration from environment, config file, and defaults
func Load() (*Config, error) {
	// Local .env is optional
	_ = godotenv.Load()

	// Set defaults
	viper.SetDefault("api-base-url", "http://localhost:8000")
	viper.SetDefault("token-path", ".artifacts/token")
	viper.SetDefault("sqlite-path", ".artifacts/submissions.db")
	viper.SetDefault("fsm-db-path", ".artifacts/fsm.db")
	viper.SetDefault("work-dir", "/tmp/suryasaathi")
	viper.SetDefault("media-dir", "")
	viper.SetDefault("evidence-bucket", "")
	viper.SetDefault("evidence-region", "ap-south-1")
	viper.SetDefault("evidence-prefix", "")
	viper.SetDefault("location-command", "termux-location")
	viper.SetDefault("camera-command", "")
	viper.SetDefault("min-identifier-len", 5)
	viper.SetDefault("allow-zero-coordinate", false)
	viper.SetDefault("max-photo-size", 10*1024*1024)

	// Environment variables (will be SURYA_API_BASE_URL, etc.)
	viper.SetEnvPrefix("SURYA")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Config file (optional)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.suryasaathi")

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration for errors
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api-base-url cannot be empty")
	}
	if c.TokenPath == "" {
		return fmt.Errorf("token-path cannot be empty")
	}
	if c.SQLitePath == "" {
		return fmt.Errorf("sqlite-path cannot be empty")
	}
	if c.FSMDBPath == "" {
		return fmt.Errorf("fsm-db-path cannot be empty")
	}
	if c.WorkDir == "" {
		return fmt.Errorf("work-dir cannot be empty")
	}
	if c.MediaDir == "" && c.EvidenceBucket == "" && c.CameraCommand == "" {
		return fmt.Errorf("no photo source configured: set media-dir, evidence-bucket, or camera-command")
	}
	if c.MinIdentifierLen < 0 {
		return fmt.Errorf("min-identifier-len must be non-negative")
	}
	if c.MaxPhotoSize < 0 {
		return fmt.Errorf("max-photo-size must be non-negative")
	}
	return nil
}
