package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	StorageFiles  = "files"
	StorageSqlite = "sqlite"
)

type Config struct {
	Port      string `mapstructure:"port"`
	DataDir   string `mapstructure:"data_dir"`
	UploadDir string `mapstructure:"upload_dir"`
	Storage   string `mapstructure:"storage"`
}

// LoadConfig reads the yaml config file when it exists and overlays
// environment variables. A missing file is not an error: the server runs
// with built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8787")
	v.SetDefault("data_dir", "data/memories")
	v.SetDefault("upload_dir", "data/uploads")
	v.SetDefault("storage", StorageFiles)

	// Set up Viper to read from environment variables
	v.AutomaticEnv()
	v.BindEnv("port", "PORT")
	v.BindEnv("data_dir", "DATA_DIR")
	v.BindEnv("upload_dir", "UPLOAD_DIR")
	v.BindEnv("storage", "STORAGE")

	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
