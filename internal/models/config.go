package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Seed             int    `mapstructure:"seed"`
	InputSource      string `mapstructure:"input_source"` // "file" or "postgres"
	InputFile        string `mapstructure:"input_file"`
	OutputPath       string `mapstructure:"output_path"`
	OutputFolder     string `mapstructure:"output_folder"`
	OutputFormat     string `mapstructure:"output_format"` // "json", "csv" or "parquet"
	OutputDest       string `mapstructure:"output_destination"`
	ExplanationFile  string `mapstructure:"explanation_file"`
	KafkaEnabled     bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`

	// Seed command sizing
	SeedRetailers int `mapstructure:"seed_retailers"`
	SeedOrders    int `mapstructure:"seed_orders"`
	SeedToys      int `mapstructure:"seed_toys"`
	SeedMaterials int `mapstructure:"seed_materials"`
	SeedSuppliers int `mapstructure:"seed_suppliers"`

	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Database     DatabaseConfig     `mapstructure:"database"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ConnString renders a pgx-compatible connection string.
func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("input_source", "file")
	viper.SetDefault("input_file", "examples/data.json")
	viper.SetDefault("output_format", "json")
	viper.SetDefault("output_destination", "local")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
