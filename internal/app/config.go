package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"bleprofile/internal/domain"
	"bleprofile/internal/logger"
	"bleprofile/internal/session"
	"bleprofile/internal/store"
)

// DefaultConfigFile is read from the working directory when present.
const DefaultConfigFile = "bleprofile.yaml"

// Defaults for the heart-rate profile template.
const (
	DefaultServiceUUID        = "0000180D-0000-1000-8000-00805F9B34FB"
	DefaultCharacteristicUUID = "00002A37-0000-1000-8000-00805F9B34FB"
	DefaultParserType         = "HeartRate"
)

// Config holds runtime options for building the app.
type Config struct {
	ProfilesPath string          `yaml:"profiles_path"` // profile collection, e.g. profiles.json
	ScanDuration time.Duration   `yaml:"scan_duration"` // e.g. 10s
	Template     domain.Template `yaml:"template"`
	Logging      logger.Config   `yaml:"logging"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		ProfilesPath: store.DefaultProfilesFile,
		ScanDuration: session.DefaultScanDuration,
		Template: domain.Template{
			ServiceUUID:        DefaultServiceUUID,
			CharacteristicUUID: DefaultCharacteristicUUID,
			ParserType:         DefaultParserType,
		},
		Logging: logger.Config{Level: "info", Output: "stderr"},
	}
}

// LoadConfig starts from DefaultConfig, overlays the YAML file at path and
// then BLEPROFILE_* environment variables. A missing file is ignored unless
// required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("BLEPROFILE_PROFILES"); v != "" {
		cfg.ProfilesPath = v
	}
	if v := os.Getenv("BLEPROFILE_SCAN_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("BLEPROFILE_SCAN_DURATION: %w", err)
		}
		cfg.ScanDuration = d
	}
	if v := os.Getenv("BLEPROFILE_SERVICE_UUID"); v != "" {
		cfg.Template.ServiceUUID = v
	}
	if v := os.Getenv("BLEPROFILE_CHARACTERISTIC_UUID"); v != "" {
		cfg.Template.CharacteristicUUID = v
	}
	if v := os.Getenv("BLEPROFILE_PARSER_TYPE"); v != "" {
		cfg.Template.ParserType = v
	}
	if v := os.Getenv("BLEPROFILE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// Validate checks the configuration for values the scan flow cannot use.
// Template identifiers are checked for UUID syntax only; they are stored
// exactly as configured.
func (c Config) Validate() error {
	var errs []error

	if c.ProfilesPath == "" {
		errs = append(errs, errors.New("profiles_path is required"))
	}
	if c.ScanDuration <= 0 {
		errs = append(errs, fmt.Errorf("scan_duration must be positive, got %s", c.ScanDuration))
	}
	if _, err := uuid.Parse(c.Template.ServiceUUID); err != nil {
		errs = append(errs, fmt.Errorf("template.service_uuid %q: %w", c.Template.ServiceUUID, err))
	}
	if _, err := uuid.Parse(c.Template.CharacteristicUUID); err != nil {
		errs = append(errs, fmt.Errorf("template.characteristic_uuid %q: %w", c.Template.CharacteristicUUID, err))
	}
	if c.Template.ParserType == "" {
		errs = append(errs, errors.New("template.parser_type is required"))
	}

	return errors.Join(errs...)
}
